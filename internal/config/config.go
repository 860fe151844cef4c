package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Hazard   HazardConfig   `json:"hazard"`
	Route    RouteConfig    `json:"route"`
	Alert    AlertConfig    `json:"alert"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type HazardConfig struct {
	ConfirmThreshold    int     `json:"confirm_threshold"`
	DefaultNearbyRadius float64 `json:"default_nearby_radius_m"`
}

type RouteConfig struct {
	GraphPath            string        `json:"graph_path"`
	GraphRefreshInterval time.Duration `json:"graph_refresh_interval"`
	MaxSnapM             float64       `json:"max_snap_m"`
	DefaultAvoidRadiusM  float64       `json:"default_avoid_radius_m"`
	PenaltyFactor        float64       `json:"penalty_factor"`
	AvgSpeedMS           float64       `json:"avg_speed_ms"`
	MaxExpansions        int           `json:"max_expansions"`
	FallbackOnDisconnect bool          `json:"fallback_on_disconnect"`
}

type AlertConfig struct {
	GeofenceM float64 `json:"geofence_m"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "saferoute_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		Hazard: HazardConfig{
			ConfirmThreshold:    getEnvInt("HAZARD_CONFIRM_THRESHOLD", 3),
			DefaultNearbyRadius: getEnvFloat("HAZARD_NEARBY_RADIUS_M", 500),
		},
		Route: RouteConfig{
			GraphPath:            getEnv("ROUTE_GRAPH_PATH", "data/roadgraph.json"),
			GraphRefreshInterval: getEnvDuration("ROUTE_GRAPH_REFRESH", 30*time.Minute),
			MaxSnapM:             getEnvFloat("ROUTE_MAX_SNAP_M", 250),
			DefaultAvoidRadiusM:  getEnvFloat("ROUTE_AVOID_RADIUS_M", 100),
			PenaltyFactor:        getEnvFloat("ROUTE_PENALTY_FACTOR", 5),
			AvgSpeedMS:           getEnvFloat("ROUTE_AVG_SPEED_MS", 1.4),
			MaxExpansions:        getEnvInt("ROUTE_MAX_EXPANSIONS", 200000),
			FallbackOnDisconnect: getEnvBool("ROUTE_FALLBACK_ON_DISCONNECT", true),
		},
		Alert: AlertConfig{
			GeofenceM: getEnvFloat("ALERT_GEOFENCE_M", 2000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("graph_path", cfg.Route.GraphPath))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Route.GraphPath == "" {
		return errors.New("ROUTE_GRAPH_PATH required")
	}

	if c.Hazard.ConfirmThreshold < 1 {
		return errors.New("HAZARD_CONFIRM_THRESHOLD must be >= 1")
	}

	if c.Alert.GeofenceM <= 0 {
		return errors.New("ALERT_GEOFENCE_M must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
