package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MONGO_URI", "MONGODB_URI", "JWT_SECRET", "PORT", "ALLOWED_ORIGINS", "FRONTEND_URL", "FRONTEND_URL_2", "ADMIN_USERNAME", "ADMIN_PASSWORD", "ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017/portfolio", cfg.MongoURI)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "faiz", cfg.AdminUsername)
	assert.Equal(t, "123456", cfg.AdminPassword)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_AllowedOriginsList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://syedfaiz.dev , https://www.syedfaiz.dev,")

	cfg := Load()
	assert.Equal(t, []string{"https://syedfaiz.dev", "https://www.syedfaiz.dev"}, cfg.AllowedOrigins)
}

func TestLoad_FrontendURLFallback(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_URL", "https://portfolio.example.com")
	t.Setenv("FRONTEND_URL_2", "http://localhost:5173")

	cfg := Load()
	assert.Equal(t, []string{"https://portfolio.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoad_MongoURIAliases(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGODB_URI", "mongodb://db.example.com:27017/site")

	cfg := Load()
	assert.Equal(t, "mongodb://db.example.com:27017/site", cfg.MongoURI)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "Production")
	assert.True(t, Load().IsProduction())

	t.Setenv("ENV", "development")
	assert.False(t, Load().IsProduction())
}
