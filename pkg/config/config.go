// Package config provides configuration management for the bot.
// It loads environment variables and makes them available throughout the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend selectors.
const (
	StorageFile  = "file"
	StorageMongo = "mongo"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken   string
	DevGuildID string
	OwnerID    string

	// Persistence
	Storage    string // "file" or "mongo"
	DataFile   string
	MongoDBURL string
	DBName     string

	// Scheduler
	PollInterval time.Duration

	// Web Server
	Port string

	// MQTT telemetry (optional, disabled when host is empty)
	MQTTHost     string
	MQTTPort     string
	MQTTUser     string
	MQTTPassword string

	// Environment
	Environment string

	// Webhooks
	ErrorWebhook string
}

var (
	Version   = "Dev-Local"
	BuildTime = "today"
)

var (
	cfg     *Config
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	cfg = &Config{
		BotToken:   getEnv("DISCORD_TOKEN", ""),
		DevGuildID: getEnv("devGuildId", ""),
		OwnerID:    getEnv("ownerId", ""),

		Storage:    getEnv("STORAGE", StorageFile),
		DataFile:   getEnv("DATA_FILE", "hoshimi_data.json"),
		MongoDBURL: getEnv("mongodbUrl", "mongodb://localhost:27017"),
		DBName:     getEnv("dbName", "Hoshimi"),

		PollInterval: time.Duration(getEnvInt("GIVEAWAY_POLL_SECONDS", 20)) * time.Second,

		Port: getEnv("PORT", "3000"),

		MQTTHost:     getEnv("MQTT_Host", ""),
		MQTTPort:     getEnv("MQTT_Port", "1883"),
		MQTTUser:     getEnv("MQTT_User", ""),
		MQTTPassword: getEnv("MQTT_Password", ""),

		Environment: getEnv("enviroment", "dev"),

		ErrorWebhook: getEnv("errorWebhook", ""),
	}
}

// Load initializes the configuration from environment variables.
// A missing Discord token is the one configuration error the bot
// refuses to start without.
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}
	return cfg, nil
}

// Get returns the current configuration
func Get() *Config {
	cfgOnce.Do(loadConfig)
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
