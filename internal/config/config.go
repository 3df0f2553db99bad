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
	Rows          int
	Cols          int
	Seed          int64
	Color         bool
	ComputerDelay time.Duration

	KafkaBrokers    []string
	KafkaTopic      string
	KafkaGroup      string
	SummaryInterval time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		Rows:            GetEnvAsInt("CONNECT4_ROWS", 6),
		Cols:            GetEnvAsInt("CONNECT4_COLS", 7),
		Seed:            int64(GetEnvAsInt("CONNECT4_SEED", 0)),
		Color:           GetEnvAsBool("CONNECT4_COLOR", true),
		ComputerDelay:   time.Duration(GetEnvAsInt("COMPUTER_DELAY_MS", 0)) * time.Millisecond,
		KafkaBrokers:    splitList(GetEnv("KAFKA_BROKERS", "")),
		KafkaTopic:      GetEnv("KAFKA_TOPIC", "game-events"),
		KafkaGroup:      GetEnv("KAFKA_GROUP", "analytics-consumer"),
		SummaryInterval: time.Duration(GetEnvAsInt("SUMMARY_INTERVAL", 30)) * time.Second,
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetEnvAsBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
