package dto

type UpdateProfileRequest map[string]interface{}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// PublicUser is the restricted projection returned by the public
// lookup-by-email endpoint.
type PublicUser struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}
