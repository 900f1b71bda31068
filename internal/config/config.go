package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"tscat/pkg/locale"
)

type Config struct {
	// Locale est la locale des catalogues utilisée par resolve par défaut.
	Locale string `env:"TSCAT_LOCALE" toml:"locale"`
	// UILocale choisit la langue des messages de l'outil lui-même.
	UILocale    string `env:"TSCAT_UI_LOCALE" toml:"ui_locale"`
	CatalogDir  string `env:"TSCAT_CATALOG_DIR" toml:"catalog_dir"`
	DatabaseURL string `env:"DATABASE_URL" toml:"database_url"`
	LogLevel    string `env:"TSCAT_LOG_LEVEL" toml:"log_level"`
	LogNoColor  bool   `env:"TSCAT_LOG_NO_COLOR" toml:"log_no_color"`

	// Level est LogLevel une fois validé.
	Level slog.Level `toml:"-"`
}

const (
	defaultUILocale   = "en"
	defaultCatalogDir = "translations"
	defaultLogLevel   = "info"
)

// Load charge la configuration : d'abord le fichier TOML optionnel désigné par
// TSCAT_CONFIG, puis les variables d'environnement (et .env) par-dessus.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement.
	}

	cfg := &Config{}
	if path := os.Getenv("TSCAT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique les valeurs par défaut et toutes les règles sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.UILocale) == "" {
		c.UILocale = defaultUILocale
	}
	if strings.TrimSpace(c.CatalogDir) == "" {
		c.CatalogDir = defaultCatalogDir
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = defaultLogLevel
	}

	if err := c.Level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: TSCAT_LOG_LEVEL invalide (%q): %w", c.LogLevel, err)
	}

	if _, err := locale.Parse(c.UILocale); err != nil {
		return fmt.Errorf("config: TSCAT_UI_LOCALE invalide (%q): %w", c.UILocale, err)
	}
	if c.Locale != "" {
		if _, err := locale.Parse(c.Locale); err != nil {
			return fmt.Errorf("config: TSCAT_LOCALE invalide (%q): %w", c.Locale, err)
		}
	}

	if c.DatabaseURL == "" {
		// Le stockage est optionnel : les commandes qui en ont besoin le signalent.
		return nil
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme postgres attendu", c.DatabaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): host manquant", c.DatabaseURL)
	}

	return nil
}
