package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type (
	APP struct {
		Name      string        `koanf:"name"`
		Host      string        `koanf:"host"`
		Port      string        `koanf:"port"`
		Env       string        `koanf:"env"`
		JWTSecret string        `koanf:"jwt_secret"`
		TokenTTL  time.Duration `koanf:"token_ttl"`

		// TrustedProxies may set X-Forwarded-For; empty trusts nobody.
		TrustedProxies []string `koanf:"trusted_proxies"`
	}
	DB struct {
		Driver   string `koanf:"driver"`
		User     string `koanf:"user"`
		Password string `koanf:"password"`
		Name     string `koanf:"name"`
		Host     string `koanf:"host"`
		Port     string `koanf:"port"`
		Migrate  bool   `koanf:"migrate"`
	}
	MQ struct {
		User         string `koanf:"user"`
		Password     string `koanf:"password"`
		Vhost        string `koanf:"vhost"`
		Host         string `koanf:"host"`
		AmqpPort     string `koanf:"amqp_port"`
		Exchange     string `koanf:"exchange"`
		ExchangeType string `koanf:"exchange_type"`
		QueueName    string `koanf:"queue_name"`
	}
	Redis struct {
		URL      string `koanf:"url"`
		PoolSize int    `koanf:"pool_size"`
	}
	RateLimit struct {
		Requests int           `koanf:"requests"`
		Window   time.Duration `koanf:"window"`
		Burst    int           `koanf:"burst"`
	}
	Otel struct {
		Enabled     bool    `koanf:"enabled"`
		Endpoint    string  `koanf:"endpoint"`
		ServiceName string  `koanf:"service_name"`
		Insecure    bool    `koanf:"insecure"`
		SampleRate  float64 `koanf:"sample_rate"`
	}
	Security struct {
		AnswerMode string `koanf:"answer_mode"`
		BcryptCost int    `koanf:"bcrypt_cost"`
	}

	Config struct {
		App       APP       `koanf:"app"`
		DB        DB        `koanf:"db"`
		MQ        MQ        `koanf:"mq"`
		Redis     Redis     `koanf:"redis"`
		RateLimit RateLimit `koanf:"rate_limit"`
		Otel      Otel      `koanf:"otel"`
		Security  Security  `koanf:"security"`
	}
)

var defaults = map[string]any{
	"app.name":      "petconnectapi",
	"app.port":      "8080",
	"app.env":       "dev",
	"app.token_ttl": "24h",

	"db.driver":  DriverPostgres,
	"db.migrate": true,

	"mq.exchange":      "petconnect.audit",
	"mq.exchange_type": "topic",
	"mq.queue_name":    "petconnect.audit.log",

	"redis.pool_size": 10,

	"rate_limit.requests": 10,
	"rate_limit.window":   "1m",
	"rate_limit.burst":    5,

	"otel.service_name": "petconnect-api",
	"otel.insecure":     true,
	"otel.sample_rate":  0.1,

	"security.answer_mode": "plain",
	"security.bcrypt_cost": 10,
}

var envKeyMap = map[string]string{
	"SERVICE_NAME":       "app.name",
	"SERVICE_HOST":       "app.host",
	"SERVICE_PORT":       "app.port",
	"SERVICE_ENV":        "app.env",
	"SERVICE_JWT_SECRET": "app.jwt_secret",
	"SERVICE_TOKEN_TTL":  "app.token_ttl",
	"TRUSTED_PROXIES":    "app.trusted_proxies",

	"DB_DRIVER":         "db.driver",
	"DB_MIGRATE":        "db.migrate",
	"POSTGRES_USER":     "db.user",
	"POSTGRES_PASSWORD": "db.password",
	"POSTGRES_DB":       "db.name",
	"POSTGRES_HOST":     "db.host",
	"POSTGRES_PORT":     "db.port",

	"RABBITMQ_USER":          "mq.user",
	"RABBITMQ_PASSWORD":      "mq.password",
	"RABBITMQ_VHOST":         "mq.vhost",
	"RABBITMQ_HOST":          "mq.host",
	"RABBITMQ_AMQP_PORT":     "mq.amqp_port",
	"RABBITMQ_EXCHANGE":      "mq.exchange",
	"RABBITMQ_EXCHANGE_TYPE": "mq.exchange_type",
	"RABBITMQ_QUEUE_NAME":    "mq.queue_name",

	"REDIS_URL":       "redis.url",
	"REDIS_POOL_SIZE": "redis.pool_size",

	"RATE_LIMIT_REQUESTS": "rate_limit.requests",
	"RATE_LIMIT_WINDOW":   "rate_limit.window",
	"RATE_LIMIT_BURST":    "rate_limit.burst",

	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",

	"SECURITY_ANSWER_MODE": "security.answer_mode",
	"BCRYPT_COST":          "security.bcrypt_cost",
}

// envKeyValue maps known variables to config keys and drops the rest.
func envKeyValue(name, value string) (string, any) {
	key := envKeyMap[name]
	if key == "app.trusted_proxies" {
		return key, splitList(value)
	}
	return key, value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load layers defaults, the optional YAML file named by CONFIG_FILE and the
// environment, in that order.
func Load() (Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return Config{}, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKeyValue), nil); err != nil {
		return Config{}, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.App.JWTSecret == "" {
		return fmt.Errorf("SERVICE_JWT_SECRET is required")
	}
	if c.App.TokenTTL <= 0 {
		return fmt.Errorf("SERVICE_TOKEN_TTL must be positive")
	}
	switch c.DB.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Burst <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS, RATE_LIMIT_BURST and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// MQEnabled reports whether a broker is configured.
func (c Config) MQEnabled() bool { return c.MQ.Host != "" }

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
