package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "TOKEN_TTL", "PEPPER_FILE",
		"ENV", "PORT", "HOST", "CORS_ALLOWED_ORIGINS", "METRICS_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "scribe.db", cfg.DatabaseURL)
	require.Equal(t, "scribe", cfg.Issuer)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, ":3000", cfg.Addr())
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.True(t, cfg.MetricsEnabled)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://scribe@db/scribe")
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("TOKEN_TTL", "90")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := LoadConfig()
	require.Equal(t, "postgres://scribe@db/scribe", cfg.DatabaseURL)
	require.Equal(t, "127.0.0.1:8080", cfg.Addr())
	require.Equal(t, 90*time.Second, cfg.TokenTTL)
	require.Equal(t, 2*time.Second, cfg.RequestTimeout)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.False(t, cfg.MetricsEnabled)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "http")
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := LoadConfig()
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.True(t, cfg.MetricsEnabled)
}

func TestValidateSecret(t *testing.T) {
	strong := "0123456789abcdef0123456789abcdef"

	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr error
	}{
		{name: "dev without secret", env: "dev"},
		{name: "dev accepts weak secret", env: "dev", secret: "secret"},
		{name: "prod without secret", env: "prod", wantErr: ErrMissingSecret},
		{name: "prod placeholder", env: "prod", secret: "ChangeMe", wantErr: ErrInsecureSecret},
		{name: "prod short secret", env: "prod", secret: "short-but-not-default", wantErr: ErrShortSecret},
		{name: "prod strong secret", env: "prod", secret: strong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Env: tt.env, JWTSecret: tt.secret}
			err := cfg.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, cfg.JWTSecret)
		})
	}
}

func TestValidateGeneratesEphemeralDevSecret(t *testing.T) {
	a := Config{Env: "dev"}
	b := Config{Env: "dev"}
	require.NoError(t, a.Validate())
	require.NoError(t, b.Validate())

	require.True(t, a.generatedSecret)
	require.GreaterOrEqual(t, len(a.JWTSecret), minSecretLength)
	require.NotEqual(t, a.JWTSecret, b.JWTSecret)
}
