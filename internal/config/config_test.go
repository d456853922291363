package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_PAGE_SIZE", "")

	cfg := Load()
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 9, cfg.DefaultPageSize)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "events")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("DEFAULT_PAGE_SIZE", "12")

	cfg := Load()
	assert.Equal(t, 12, cfg.DefaultPageSize)
	assert.Equal(t,
		"host=db.internal user=svc password=secret dbname=events port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}

func TestDefaultPageSizeIgnoresGarbage(t *testing.T) {
	t.Setenv("DEFAULT_PAGE_SIZE", "zero")
	assert.Equal(t, 9, Load().DefaultPageSize)

	t.Setenv("DEFAULT_PAGE_SIZE", "-3")
	assert.Equal(t, 9, Load().DefaultPageSize)
}
