package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type AppConfig struct {
	Port            string
	DBPath          string
	CoeffCSV        string
	CoeffXLSX       string
	CORSOrigins     []string
	RequireFarmerID bool
	LogLevel        log.Lvl
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Infof("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8000"),
		DBPath:          get("DB_PATH", "drainage.db"),
		CoeffCSV:        get("COEFF_CSV", ""),
		CoeffXLSX:       get("COEFF_XLSX", ""),
		CORSOrigins:     splitList(get("CORS_ORIGINS", "*")),
		RequireFarmerID: get("REQUIRE_FARMER_ID", "false") == "true",
		LogLevel:        ParseLevel(get("LOG_LEVEL", "info")),
	}
	log.Infof("[cfg] %+v", cfg)
	return cfg
}

// ParseLevel maps debug|info|warn|error|off to a gommon level, defaulting to INFO.
func ParseLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
