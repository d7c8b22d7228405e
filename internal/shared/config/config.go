package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// DefaultContextBudgetChars bounds how much document text is sent to the
// completion capability per question.
const DefaultContextBudgetChars = 1500

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	UploadDir          string
	GroqAPIKey         string
	LLMModel           string
	ContextBudgetChars int
	CORSAllowOrigin    []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := databaseURLFromEnv()

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		DatabaseURL:        dbURL,
		UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		LLMModel:           getEnv("LLM_MODEL", "openai/gpt-oss-120b"),
		ContextBudgetChars: getEnvInt("CONTEXT_BUDGET_CHARS", DefaultContextBudgetChars),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
	}
}

// databaseURLFromEnv prefers DATABASE_URL and otherwise assembles a Postgres
// URL from the DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME family.
func databaseURLFromEnv() string {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		return raw
	}
	host := strings.TrimSpace(os.Getenv("DB_HOST"))
	if host == "" {
		return ""
	}
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	name := getEnv("DB_NAME", "document_chatbot")
	auth := url.User(user)
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		auth = url.UserPassword(user, pass)
	}
	u := url.URL{
		Scheme: "postgres",
		User:   auth,
		Host:   fmt.Sprintf("%s:%s", host, port),
		Path:   "/" + name,
	}
	return u.String()
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		log.Printf("config env %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
