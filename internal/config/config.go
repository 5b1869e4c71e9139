// Package config 提供应用配置的加载和校验。
// 配置来源优先级：环境变量 > YAML配置文件 > 默认值；
// 启动时会尝试加载 .env 文件，便于本地开发。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用基础配置
type AppConfig struct {
	Name            string        `yaml:"name"`
	Env             string        `yaml:"env"` // dev | staging | prod
	Version         string        `yaml:"version"`
	Port            int           `yaml:"port"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `yaml:"level"`    // debug | info | warn | error
	Encoding string `yaml:"encoding"` // json | console
}

// CatalogConfig 商品目录的模拟延迟配置
type CatalogConfig struct {
	ProductsDelay   time.Duration `yaml:"products_delay"`
	CategoriesDelay time.Duration `yaml:"categories_delay"`
	ProductDelay    time.Duration `yaml:"product_delay"`
}

// CheckoutConfig 结算流程配置
type CheckoutConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"` // 模拟支付处理时长
	ReturnDelay time.Duration `yaml:"return_delay"` // 完成后返回首页的延迟
}

// NotificationConfig 通知配置
type NotificationConfig struct {
	Lifetime time.Duration `yaml:"lifetime"` // 每条通知的展示时长
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Type    string        `yaml:"type"` // redis | memory
	TTL     time.Duration `yaml:"ttl"`
}

// RedisConfig Redis连接配置
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// StorageConfig 本地持久化存储配置
type StorageConfig struct {
	Dir string `yaml:"dir"` // 收藏和偏好的存储目录
}

// RateLimitConfig API限流配置
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled"`
	Rate    int64         `yaml:"rate"`
	Window  time.Duration `yaml:"window"`
	Burst   int64         `yaml:"burst"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// Config 应用完整配置
type Config struct {
	App           AppConfig          `yaml:"app"`
	Log           LogConfig          `yaml:"log"`
	Catalog       CatalogConfig      `yaml:"catalog"`
	Checkout      CheckoutConfig     `yaml:"checkout"`
	Notifications NotificationConfig `yaml:"notifications"`
	Cache         CacheConfig        `yaml:"cache"`
	Redis         RedisConfig        `yaml:"redis"`
	Storage       StorageConfig      `yaml:"storage"`
	RateLimit     RateLimitConfig    `yaml:"rate_limit"`
	CORS          CORSConfig         `yaml:"cors"`
}

// defaultConfig 返回所有配置项的默认值
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:            "mercado-shop",
			Env:             "dev",
			Version:         "1.0.0",
			Port:            8080,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		Catalog: CatalogConfig{
			ProductsDelay:   800 * time.Millisecond,
			CategoriesDelay: 300 * time.Millisecond,
			ProductDelay:    500 * time.Millisecond,
		},
		Checkout: CheckoutConfig{
			SettleDelay: 2 * time.Second,
			ReturnDelay: 3 * time.Second,
		},
		Notifications: NotificationConfig{
			Lifetime: 5 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: false,
			Type:    "memory",
			TTL:     5 * time.Minute,
		},
		Redis: RedisConfig{
			Host: "127.0.0.1",
			Port: 6379,
			DB:   0,
		},
		Storage: StorageConfig{
			Dir: "data",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Rate:    100,
			Window:  time.Second,
			Burst:   200,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		},
	}
}

// Load 加载并校验配置。
// 依次应用：默认值、CONFIG_FILE 指定的YAML文件、环境变量。
func Load() (*Config, error) {
	// .env 文件不存在时静默忽略
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile 从YAML文件合并配置
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv 应用环境变量覆盖
func applyEnv(cfg *Config) {
	setString(&cfg.App.Name, "APP_NAME")
	setString(&cfg.App.Env, "APP_ENV")
	setString(&cfg.App.Version, "APP_VERSION")
	setInt(&cfg.App.Port, "APP_PORT")
	setDuration(&cfg.App.RequestTimeout, "APP_REQUEST_TIMEOUT")
	setDuration(&cfg.App.ShutdownTimeout, "APP_SHUTDOWN_TIMEOUT")

	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Encoding, "LOG_ENCODING")

	setDuration(&cfg.Catalog.ProductsDelay, "CATALOG_PRODUCTS_DELAY")
	setDuration(&cfg.Catalog.CategoriesDelay, "CATALOG_CATEGORIES_DELAY")
	setDuration(&cfg.Catalog.ProductDelay, "CATALOG_PRODUCT_DELAY")

	setDuration(&cfg.Checkout.SettleDelay, "CHECKOUT_SETTLE_DELAY")
	setDuration(&cfg.Checkout.ReturnDelay, "CHECKOUT_RETURN_DELAY")

	setDuration(&cfg.Notifications.Lifetime, "NOTIFICATION_LIFETIME")

	setBool(&cfg.Cache.Enabled, "CACHE_ENABLED")
	setString(&cfg.Cache.Type, "CACHE_TYPE")
	setDuration(&cfg.Cache.TTL, "CACHE_TTL")

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")

	setString(&cfg.Storage.Dir, "STORAGE_DIR")

	setBool(&cfg.RateLimit.Enabled, "RATE_LIMIT_ENABLED")
	setInt64(&cfg.RateLimit.Rate, "RATE_LIMIT_RATE")
	setDuration(&cfg.RateLimit.Window, "RATE_LIMIT_WINDOW")
	setInt64(&cfg.RateLimit.Burst, "RATE_LIMIT_BURST")

	setSlice(&cfg.CORS.AllowedOrigins, "CORS_ALLOWED_ORIGINS")
	setSlice(&cfg.CORS.AllowedMethods, "CORS_ALLOWED_METHODS")
	setSlice(&cfg.CORS.AllowedHeaders, "CORS_ALLOWED_HEADERS")
}

// validate 校验配置的合法性
func (c *Config) validate() error {
	switch c.App.Env {
	case "dev", "staging", "prod":
	default:
		return fmt.Errorf("invalid app env: %s", c.App.Env)
	}

	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid app port: %d", c.App.Port)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log encoding: %s", c.Log.Encoding)
	}

	switch c.Cache.Type {
	case "redis", "memory":
	default:
		return fmt.Errorf("invalid cache type: %s", c.Cache.Type)
	}

	if c.Storage.Dir == "" {
		return fmt.Errorf("storage dir must not be empty")
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		*dst = parts
	}
}
