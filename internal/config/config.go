package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	localBackend    = "http://localhost:4242"
	deployedBackend = "https://essential-oils-backend-1.onrender.com"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  No .env file found — falling back to system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// BackendBase resolves the base URL of the REST backend. An explicit
// BACKEND_API_BASE always wins; otherwise the runtime host name decides
// between the local dev backend and the deployed one.
func BackendBase() string {
	if base := os.Getenv("BACKEND_API_BASE"); base != "" {
		return strings.TrimRight(base, "/")
	}

	host, err := os.Hostname()
	if err == nil && isLocalHost(host) {
		return localBackend
	}
	return deployedBackend
}

func isLocalHost(host string) bool {
	host = strings.ToLower(host)
	return host == "localhost" ||
		strings.HasSuffix(host, ".local") ||
		strings.HasSuffix(host, ".localdomain") ||
		strings.HasPrefix(host, "127.")
}
