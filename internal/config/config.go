// README: Config loader; defaults, optional config.yaml and MFTNB_* environment variables via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "MFTNB"

type SessionConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
	Cookie  string        `mapstructure:"cookie"`
	Secure  bool          `mapstructure:"secure"`
}

type Config struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	HTTP     struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`
	Session SessionConfig `mapstructure:"session"`
	Redis   struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Maps struct {
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"maps"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	Rate struct {
		PerMinute int `mapstructure:"per_minute"`
	} `mapstructure:"rate"`
	CORS struct {
		Origins []string `mapstructure:"origins"`
	} `mapstructure:"cors"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads config.yaml from . or ./config when present, then applies
// MFTNB_* environment variables, e.g. MFTNB_HTTP_ADDR or MFTNB_SESSION_TTL.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("http.addr", ":5000")
	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.cookie", "mftnb_session")
	v.SetDefault("session.secure", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("db.dsn", "")
	v.SetDefault("maps.api_key", "")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "mftnb.booking.submitted")
	v.SetDefault("rate.per_minute", 120)
	v.SetDefault("cors.origins", []string{"*"})
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Kafka.Brokers = compact(cfg.Kafka.Brokers)
	cfg.CORS.Origins = compact(cfg.CORS.Origins)

	switch cfg.Session.Backend {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("session.backend must be memory or redis, got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("session.ttl must be positive, got %s", cfg.Session.TTL)
	}
	if cfg.Session.Cookie == "" {
		return Config{}, errors.New("session.cookie must not be empty")
	}
	return cfg, nil
}

// compact trims entries and drops empty ones, so "a, b," from the environment becomes [a b].
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
