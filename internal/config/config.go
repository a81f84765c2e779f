package config

import "os"

type Config struct {
	HTTPAddr    string
	BadgerPath  string
	JWTSecret   string
	GenAIAPIKey string
	GenAIURL    string
	GenAIModel  string
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":3000"),
		BadgerPath:  getenv("BADGER_PATH", "data"),
		JWTSecret:   getenv("JWT_SECRET", ""),
		GenAIAPIKey: getenv("GENAI_API_KEY", ""),
		GenAIURL:    getenv("GENAI_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		GenAIModel:  getenv("GENAI_MODEL", "gemini-2.0-flash"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
