package identity

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Google publishes the RSA keys used to sign Firebase ID tokens at this JWKS
// endpoint; keyfunc handles caching and refresh.
const firebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

var ErrMissingEmail = errors.New("identity token carries no email claim")

// Principal is the verified identity derived from a bearer credential.
type Principal struct {
	Email   string
	Name    string
	Picture string
	UID     string
}

// TokenVerifier validates a raw ID token and produces the principal it
// represents. Implemented by FirebaseVerifier; stubbed in tests.
type TokenVerifier interface {
	Verify(idToken string) (*Principal, error)
}

type firebaseClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

type serviceAccount struct {
	ProjectID string `json:"project_id"`
}

// FirebaseVerifier checks Firebase ID tokens (RS256) against Google's
// securetoken JWKS and the project's issuer/audience.
type FirebaseVerifier struct {
	jwks      *keyfunc.JWKS
	projectID string
	issuer    string
}

// NewFirebaseVerifier decodes the base64-encoded service account JSON to learn
// the project ID and starts a background-refreshing JWKS client.
func NewFirebaseVerifier(serviceKeyBase64 string) (*FirebaseVerifier, error) {
	if serviceKeyBase64 == "" {
		return nil, errors.New("FB_SERVICE_KEY is required")
	}

	raw, err := base64.StdEncoding.DecodeString(serviceKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service key: %w", err)
	}

	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, fmt.Errorf("failed to parse service account JSON: %w", err)
	}
	if sa.ProjectID == "" {
		return nil, errors.New("service account JSON has no project_id")
	}

	jwks, err := keyfunc.Get(firebaseJWKSURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch securetoken JWKS: %w", err)
	}

	return &FirebaseVerifier{
		jwks:      jwks,
		projectID: sa.ProjectID,
		issuer:    "https://securetoken.google.com/" + sa.ProjectID,
	}, nil
}

func (v *FirebaseVerifier) Verify(idToken string) (*Principal, error) {
	claims := &firebaseClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token verification failed")
	}
	if claims.Email == "" {
		return nil, ErrMissingEmail
	}

	return &Principal{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
		UID:     claims.Subject,
	}, nil
}

// Stop ends the JWKS background refresh goroutine.
func (v *FirebaseVerifier) Stop() {
	v.jwks.EndBackground()
}
