package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	MaxFileSize     int64
	RawPreviewChars int
	DefaultSector   string
}

func LoadConfig() *Config {
	// Optional .env for local development; env vars win in deployment.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	maxFileSizeMB := int64(20)
	if v := os.Getenv("MAX_FILE_SIZE_MB"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			maxFileSizeMB = parsed
		}
	}

	previewChars := 400
	if v := os.Getenv("RAW_PREVIEW_CHARS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			previewChars = parsed
		}
	}

	defaultSector := os.Getenv("DEFAULT_SECTOR")

	return &Config{
		ServerPort:      serverPort,
		MaxFileSize:     maxFileSizeMB * 1024 * 1024,
		RawPreviewChars: previewChars,
		DefaultSector:   defaultSector,
	}
}
