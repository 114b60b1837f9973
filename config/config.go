package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del analizador.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	API      APIConfig      `yaml:"api"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
}

// AnalyzerConfig controla los umbrales de la resolución de costes.
type AnalyzerConfig struct {
	// SpreadThreshold: buy/sell por debajo de esto → instabuy aceptable.
	SpreadThreshold float64 `yaml:"spread_threshold"`
	// BulkQuantity y BulkUnitPrice disparan la regla de compra al por mayor:
	// un ingrediente barato pedido en masa señala que el padre se compra entero.
	BulkQuantity  float64 `yaml:"bulk_quantity"`
	BulkUnitPrice float64 `yaml:"bulk_unit_price"`
	// MinSellPrice filtra items baratos/ilíquidos del ranking.
	MinSellPrice float64 `yaml:"min_sell_price"`
	TopN         int     `yaml:"top_n"`
}

// APIConfig contiene los base URLs de las fuentes de precios.
type APIConfig struct {
	BazaarBase    string `yaml:"bazaar_base"`
	LowestBinBase string `yaml:"lowest_bin_base"`
}

// CatalogConfig indica de dónde se carga el catálogo de items.
type CatalogConfig struct {
	Path string `yaml:"path"` // ruta al JSON de items (formato data.json)
}

// CacheConfig controla el snapshot cache de los fetches.
type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Default devuelve una configuración usable sin archivo YAML.
func Default() *Config {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	setDefaults(cfg)
	return cfg
}

// SnapshotTTL devuelve el TTL del snapshot cache como time.Duration.
func (c *Config) SnapshotTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Analyzer.SpreadThreshold <= 0 {
		cfg.Analyzer.SpreadThreshold = 1.07
	}
	if cfg.Analyzer.BulkQuantity <= 0 {
		cfg.Analyzer.BulkQuantity = 80
	}
	if cfg.Analyzer.BulkUnitPrice <= 0 {
		cfg.Analyzer.BulkUnitPrice = 1000
	}
	if cfg.Analyzer.MinSellPrice <= 0 {
		cfg.Analyzer.MinSellPrice = 50000
	}
	if cfg.Analyzer.TopN <= 0 {
		cfg.Analyzer.TopN = 20
	}
	if cfg.API.BazaarBase == "" {
		cfg.API.BazaarBase = "https://api.hypixel.net"
	}
	if cfg.API.LowestBinBase == "" {
		cfg.API.LowestBinBase = "http://moulberry.codes"
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "data.json"
	}
	if cfg.Cache.TTLSeconds <= 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
