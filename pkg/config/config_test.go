package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	resetForTesting()
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("PORT", "8080")
	t.Setenv("enviroment", "prod")
	t.Setenv("STORAGE", "mongo")
	t.Setenv("GIVEAWAY_POLL_SECONDS", "5")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if c.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want test-token", c.BotToken)
	}
	if c.Port != "8080" {
		t.Errorf("Port = %v, want 8080", c.Port)
	}
	if c.Environment != "prod" {
		t.Errorf("Environment = %v, want prod", c.Environment)
	}
	if c.Storage != StorageMongo {
		t.Errorf("Storage = %v, want %v", c.Storage, StorageMongo)
	}
	if c.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", c.PollInterval)
	}
}

func TestLoadMissingToken(t *testing.T) {
	resetForTesting()
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Error("Load() without DISCORD_TOKEN should fail")
	}
}

func TestDefaultValues(t *testing.T) {
	resetForTesting()
	t.Setenv("DISCORD_TOKEN", "test-token")
	for _, key := range []string{"STORAGE", "DATA_FILE", "mongodbUrl", "dbName", "GIVEAWAY_POLL_SECONDS", "PORT", "MQTT_Port", "enviroment"} {
		t.Setenv(key, "")
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if c.Storage != StorageFile {
		t.Errorf("Storage = %v, want %v", c.Storage, StorageFile)
	}
	if c.DataFile != "hoshimi_data.json" {
		t.Errorf("DataFile = %v, want hoshimi_data.json", c.DataFile)
	}
	if c.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL = %v, want mongodb://localhost:27017", c.MongoDBURL)
	}
	if c.DBName != "Hoshimi" {
		t.Errorf("DBName = %v, want Hoshimi", c.DBName)
	}
	if c.PollInterval != 20*time.Second {
		t.Errorf("PollInterval = %v, want 20s", c.PollInterval)
	}
	if c.Port != "3000" {
		t.Errorf("Port = %v, want 3000", c.Port)
	}
	if c.MQTTPort != "1883" {
		t.Errorf("MQTTPort = %v, want 1883", c.MQTTPort)
	}
	if c.Environment != "dev" {
		t.Errorf("Environment = %v, want dev", c.Environment)
	}
}

func TestGet(t *testing.T) {
	resetForTesting()
	t.Setenv("DISCORD_TOKEN", "test-token")

	c := Get()
	if c == nil {
		t.Fatal("Get() returned nil")
	}
	if c != Get() {
		t.Error("Get() should return the same instance")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_CONFIG_KEY", "value")

	if got := getEnv("TEST_CONFIG_KEY", "fallback"); got != "value" {
		t.Errorf("getEnv() = %v, want value", got)
	}
	if got := getEnv("TEST_CONFIG_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv() = %v, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_CONFIG_INT", "42")
	t.Setenv("TEST_CONFIG_BAD_INT", "oops")

	if got := getEnvInt("TEST_CONFIG_INT", 7); got != 42 {
		t.Errorf("getEnvInt() = %v, want 42", got)
	}
	if got := getEnvInt("TEST_CONFIG_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt() for non-numeric value = %v, want 7", got)
	}
	if got := getEnvInt("TEST_CONFIG_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt() = %v, want 7", got)
	}
}

func TestIsProd(t *testing.T) {
	prod := &Config{Environment: "prod"}
	if !prod.IsProd() {
		t.Error("IsProd() = false for prod environment")
	}

	dev := &Config{Environment: "dev"}
	if dev.IsProd() {
		t.Error("IsProd() = true for dev environment")
	}
}
