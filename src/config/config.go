package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BackendURL  string
	Port        string
	HTTPTimeout time.Duration
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func Load() Config {
	secs, err := strconv.Atoi(getenv("HTTP_TIMEOUT", "60"))
	if err != nil || secs <= 0 {
		log.Fatalf("bad HTTP_TIMEOUT: %v", getenv("HTTP_TIMEOUT", "60"))
	}
	return Config{
		BackendURL:  getenv("BACKEND_URL", "http://127.0.0.1:8000"),
		Port:        getenv("PORT", "8080"),
		HTTPTimeout: time.Duration(secs) * time.Second,
	}
}
