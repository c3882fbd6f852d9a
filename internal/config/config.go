// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP Server
	Port string

	// Persistence
	DataBackend  string // memory | sqlite | redis
	SQLiteDBPath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// AMQP change events (optional; empty URL disables publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Backup worker
	BackupDir string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend:  getEnv("DATA_BACKEND", "memory"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/runlog.db"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "runlog"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "entry_changes"),

		BackupDir: getEnv("BACKUP_DIR", "./data/backups"),
	}
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if p < 1 || p > 65535 {
		return fmt.Errorf("invalid port %q: out of range", c.Port)
	}

	switch c.DataBackend {
	case "memory":
	case "sqlite":
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("sqlite backend requires SQLITE_DB_PATH")
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("redis backend requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown data backend %q", c.DataBackend)
	}

	if c.AMQPURL != "" {
		if c.AMQPExchange == "" || c.AMQPQueue == "" {
			return fmt.Errorf("AMQP requires both AMQP_EXCHANGE and AMQP_QUEUE")
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
