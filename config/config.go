package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port   string
	AppEnv string

	// Logging
	LogLevel string
	LogFile  string

	// Day-grid geometry (pixels), used for the live time indicator
	GridHeaderHeight  int
	GridHourRowHeight int

	// Display refresh ticks
	ClockTickInterval  time.Duration
	RenderTickInterval time.Duration

	// Seed the in-memory store with the demo roster and leave table
	SeedDemoData bool
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	clockTick, err := time.ParseDuration(getEnv("CLOCK_TICK_INTERVAL", "30s"))
	if err != nil {
		log.Fatal("Invalid CLOCK_TICK_INTERVAL format:", err)
	}

	renderTick, err := time.ParseDuration(getEnv("RENDER_TICK_INTERVAL", "60s"))
	if err != nil {
		log.Fatal("Invalid RENDER_TICK_INTERVAL format:", err)
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "logs/app.log"),

		GridHeaderHeight:  getEnvInt("GRID_HEADER_HEIGHT", 80),
		GridHourRowHeight: getEnvInt("GRID_HOUR_ROW_HEIGHT", 60),

		ClockTickInterval:  clockTick,
		RenderTickInterval: renderTick,

		SeedDemoData: strings.ToLower(getEnv("SEED_DEMO_DATA", "true")) == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s format: %v", key, err)
	}
	return n
}
