package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billogram-batch/internal/domain"
	"github.com/tu-usuario/billogram-batch/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Minimo(t *testing.T) {
	path := writeConfig(t, `
login = "api-user"
password = "api-key"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "api-user", cfg.Credentials.Login)
	assert.Equal(t, "api-key", cfg.Credentials.Password)
	// Valores por defecto
	assert.Equal(t, "https://sandbox.billogram.com/api/v2", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "utf-8", cfg.CSV.Encoding)
	assert.Equal(t, "item", cfg.Invoice.FallbackTitle)
}

func TestLoad_Completo(t *testing.T) {
	path := writeConfig(t, `
login = "api-user"
password = "api-key"

[api]
base_url = "https://billogram.com/api/v2"
timeout_seconds = 10

[log]
env = "production"
level = "debug"

[csv]
delimiter = ";"
encoding = "latin-1"

[invoice]
fallback_title = "pelicula"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://billogram.com/api/v2", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "production", cfg.Log.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "latin-1", cfg.CSV.Encoding)
	assert.Equal(t, "pelicula", cfg.Invoice.FallbackTitle)
}

// Un config.toml inexistente es fatal: debe fallar antes de cualquier llamada.
func TestLoad_ArchivoInexistente(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}

func TestLoad_TOMLInvalido(t *testing.T) {
	path := writeConfig(t, `login = sin comillas`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_CredencialesIncompletas(t *testing.T) {
	cases := []string{
		``,
		`login = "api-user"`,
		`password = "api-key"`,
		"login = \"\"\npassword = \"api-key\"",
	}
	for _, content := range cases {
		path := writeConfig(t, content)
		_, err := config.Load(path)
		assert.ErrorIs(t, err, domain.ErrConfigInvalid, "config: %q", content)
	}
}

func TestLoad_DelimitadorInvalido(t *testing.T) {
	path := writeConfig(t, `
login = "api-user"
password = "api-key"

[csv]
delimiter = "||"
`)
	_, err := config.Load(path)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}
