package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig

	// MySQL holds the user-profile database.
	Database DatabaseConfig

	// MongoDB holds chat rooms, chat messages and media blobs.
	MongoDB MongoDBConfig

	// Redis backs the delivery notifier publish channel.
	Redis RedisConfig

	Auth AuthConfig

	Logging LoggingConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `envconfig:"SERVER_PORT" default:"8084"`
	Host         string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  int    `envconfig:"SERVER_READ_TIMEOUT" default:"15"`
	WriteTimeout int    `envconfig:"SERVER_WRITE_TIMEOUT" default:"15"`
	Environment  string `envconfig:"ENVIRONMENT" default:"development"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"3306"`
	Username     string `envconfig:"DB_USER" default:"socialchat_user"`
	Password     string `envconfig:"DB_PASSWORD" default:""`
	DatabaseName string `envconfig:"DB_NAME" default:"socialchat_db"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

// MongoDBConfig contains MongoDB connection configuration
type MongoDBConfig struct {
	Host     string `envconfig:"MONGO_HOST" default:"localhost"`
	Port     string `envconfig:"MONGO_PORT" default:"27017"`
	Username string `envconfig:"MONGO_USERNAME" default:""`
	Password string `envconfig:"MONGO_PASSWORD" default:""`
	Database string `envconfig:"MONGO_DATABASE" default:"socialchat"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AuthConfig contains JWT configuration
type AuthConfig struct {
	JWTSecret   string `envconfig:"JWT_SECRET" default:""`
	TokenExpiry int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`  // debug, info, warn, error
	Format string `envconfig:"LOG_FORMAT" default:"text"` // json, text
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
}

func (cfg *Config) ServerAddr() string {
	return cfg.Server.Host + ":" + cfg.Server.Port
}
