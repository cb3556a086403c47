package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration. It is built once in main
// and passed to the layers that need it; no package-level state.
type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Remote commerce API (vendor GraphQL endpoint)
	ShopDomain      string
	StorefrontToken string

	// Remote account/profile API (backend-as-a-service)
	AccountAPIURL string
	AccountAPIKey string

	// Durable local storage (sqlite file by default, MySQL when MYSQL_DSN set)
	StorePath string

	// Optional services
	RedisAddr         string
	ElasticsearchHost string

	// Storefront behavior
	FallbackImageURL      string
	CatalogCacheTTL       time.Duration
	FreeShippingThreshold float64
	FlatShippingRate      float64

	// Newsletter popup heuristic
	PopupDelay        time.Duration
	PopupScrollPct    int
	PopupCooldownDays int

	// Browser sessions (compare sets, popup once-per-session flag)
	SessionTTL time.Duration
}

// LoadAppConfig reads configuration from environment variables.
func LoadAppConfig() *Config {
	cfg := &Config{
		AppName: getEnv("APP_NAME", "otica-isis-storefront"),
		Port:    getEnv("PORT", "8080"),
		Env:     os.Getenv("APP_ENV"),
		Debug:   os.Getenv("DEBUG") == "true",

		ShopDomain:      getEnv("SHOP_DOMAIN", "your-store.myshopify.com"),
		StorefrontToken: os.Getenv("STOREFRONT_TOKEN"),

		AccountAPIURL: os.Getenv("ACCOUNT_API_URL"),
		AccountAPIKey: os.Getenv("ACCOUNT_API_KEY"),

		StorePath: getEnv("STORE_PATH", "storefront.db"),

		RedisAddr:         os.Getenv("REDIS_ADDR"),
		ElasticsearchHost: os.Getenv("ELASTICSEARCH_HOST"),

		FallbackImageURL:      getEnv("FALLBACK_IMAGE_URL", "/media/placeholder-eyewear.jpg"),
		CatalogCacheTTL:       getDurationEnv("CATALOG_CACHE_TTL", 5*time.Minute),
		FreeShippingThreshold: getFloatEnv("FREE_SHIPPING_THRESHOLD", 200),
		FlatShippingRate:      getFloatEnv("FLAT_SHIPPING_RATE", 15),

		PopupDelay:        getDurationEnv("POPUP_DELAY", 10*time.Second),
		PopupScrollPct:    getIntEnv("POPUP_SCROLL_PCT", 50),
		PopupCooldownDays: getIntEnv("POPUP_COOLDOWN_DAYS", 7),

		SessionTTL: getDurationEnv("SESSION_TTL", 30*time.Minute),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
