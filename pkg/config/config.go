package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/tu-usuario/billogram-batch/internal/domain"
)

// Config agrupa la configuración de la herramienta (lectura vía Viper desde
// config.toml).
type Config struct {
	Credentials Credentials
	API         APIConfig
	Log         LogConfig
	CSV         CSVConfig
	Invoice     InvoiceConfig
}

// Credentials credenciales del API de Billogram (basic auth). Se cargan una
// vez al arranque y no cambian durante la corrida.
type Credentials struct {
	Login    string
	Password string
}

// APIConfig endpoint y timeout del API de Billogram.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LogConfig nivel y formato del log.
type LogConfig struct {
	Env   string // development -> consola legible; production -> JSON
	Level string
}

// CSVConfig formato de los archivos de entrada.
type CSVConfig struct {
	Delimiter string // un solo carácter; por defecto coma
	Encoding  string // utf-8 (por defecto) o latin-1
}

// InvoiceConfig ajustes del mapeo fila -> factura.
type InvoiceConfig struct {
	FallbackTitle string // título de reemplazo para títulos demasiado largos
}

// Load lee la configuración desde el archivo TOML indicado. El archivo y las
// credenciales login/password son obligatorios: sin ellos no tiene sentido
// intentar ninguna llamada al API.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}

	cfg := &Config{
		Credentials: Credentials{
			Login:    v.GetString("login"),
			Password: v.GetString("password"),
		},
		API: APIConfig{
			BaseURL: getString(v, "api.base_url", "https://sandbox.billogram.com/api/v2"),
			Timeout: time.Duration(getInt(v, "api.timeout_seconds", 30)) * time.Second,
		},
		Log: LogConfig{
			Env:   getString(v, "log.env", "development"),
			Level: getString(v, "log.level", "info"),
		},
		CSV: CSVConfig{
			Delimiter: getString(v, "csv.delimiter", ","),
			Encoding:  getString(v, "csv.encoding", "utf-8"),
		},
		Invoice: InvoiceConfig{
			FallbackTitle: getString(v, "invoice.fallback_title", "item"),
		},
	}

	if cfg.Credentials.Login == "" || cfg.Credentials.Password == "" {
		return nil, fmt.Errorf("login y password son obligatorios en %s: %w", path, domain.ErrConfigInvalid)
	}
	if len([]rune(cfg.CSV.Delimiter)) != 1 {
		return nil, fmt.Errorf("csv.delimiter debe ser un solo carácter: %w", domain.ErrConfigInvalid)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
