package config

import (
	"os"
	"strconv"
)

type Config struct {
	ListenAddr   string
	DBDriver     string
	DBPath       string
	DBDSN        string
	MediaPath    string
	BusinessTZ   string
	AuthSecret   string
	LabelReader  string
	ClaudeAPIKey string
	ClaudeModel  string
	MaxUploadMB  int64
	LogLevel     string
	LogFile      string
}

// Load reads configuration from the environment. Callers that want a .env
// file loaded should call godotenv.Load first.
func Load() *Config {
	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8000"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBPath:       getEnv("DB_PATH", "/data/cashdrop.db"),
		DBDSN:        getEnv("DB_DSN", ""),
		MediaPath:    getEnv("MEDIA_PATH", "/data/media"),
		BusinessTZ:   getEnv("BUSINESS_TZ", "America/Los_Angeles"),
		AuthSecret:   getEnv("AUTH_SECRET", "dev_secret"),
		LabelReader:  getEnv("LABEL_READER", "none"),
		ClaudeAPIKey: getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:  getEnv("CLAUDE_MODEL", "claude-3-5-haiku-latest"),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 10),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),
	}
}

// DataSource returns the driver-specific connection string.
func (c *Config) DataSource() string {
	if c.DBDriver == "mysql" {
		return c.DBDSN
	}
	return c.DBPath
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int64) int64 {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
