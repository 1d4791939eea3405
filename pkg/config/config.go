package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Modos de ejecución.
const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
	Mode string // console (menú interactivo) o http (API JSON)
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	DocsPath string // swagger.json para la UI en /docs; vacío o inexistente = sin UI
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryConfig configuración del catálogo.
type InventoryConfig struct {
	Seed              bool // cargar productos de ejemplo al iniciar
	LowStockThreshold int  // stock < umbral = stock bajo
	ReportTitle       string
	ReportDir         string // carpeta de exportación desde la consola
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APP_MODE, HTTP_PORT, INVENTORY_SEED, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario"),
			Mode: strings.ToLower(getString(v, "APP_MODE", ModeConsole)),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     getInt(v, "HTTP_PORT", 8080),
			DocsPath: getString(v, "HTTP_DOCS_PATH", "./docs/swagger.json"),
		},
		Inventory: InventoryConfig{
			Seed:              getBool(v, "INVENTORY_SEED", true),
			LowStockThreshold: getInt(v, "INVENTORY_LOW_STOCK_THRESHOLD", 5),
			ReportTitle:       getString(v, "INVENTORY_REPORT_TITLE", "Reporte de inventario"),
			ReportDir:         getString(v, "INVENTORY_REPORT_DIR", "."),
		},
	}

	if cfg.App.Mode != ModeConsole && cfg.App.Mode != ModeHTTP {
		return nil, fmt.Errorf("config: APP_MODE %q inválido (console|http)", cfg.App.Mode)
	}
	if cfg.Inventory.LowStockThreshold <= 0 {
		return nil, fmt.Errorf("config: INVENTORY_LOW_STOCK_THRESHOLD debe ser positivo")
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT %d fuera de rango", cfg.HTTP.Port)
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
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
