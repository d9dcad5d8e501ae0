package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port string

	GCPProjectID string
	GCPLocation  string
	ModelName    string

	StorageBackend string // "memory" or "firestore"
	UseMockLLM     bool   // true = use mock even on GCP

	HabitAPIURL string // base URL of the habit/calendar service; empty = static plan

	// ListenTimeout is the speech-end timeout handed to the gateway on
	// every continue-listening directive.
	ListenTimeout time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("KORA_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("KORA_PORT", "8080"),

		GCPProjectID: getEnv("KORA_GCP_PROJECT", ""),
		GCPLocation:  getEnv("KORA_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("KORA_MODEL_NAME", "gemini-2.5-flash-lite"),

		StorageBackend: getEnv("KORA_STORAGE_BACKEND", "memory"),
		UseMockLLM:     getBoolEnv("KORA_USE_MOCK_LLM", mode == ModeLocal),

		HabitAPIURL: getEnv("KORA_HABIT_API_URL", ""),

		ListenTimeout: time.Duration(getIntEnv("KORA_LISTEN_TIMEOUT_MS", 5000)) * time.Millisecond,
	}

	// Minimal validation in GCP mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("KORA_GCP_PROJECT must be set in gcp mode")
	}

	return cfg
}
