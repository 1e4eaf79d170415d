package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string // sqlite|postgres|memory
	DBDSN    string

	BlobBasePath string // archive directory for uploaded PDFs

	EnableAuth     bool
	AuthHMACSecret string
	AdminUser      string
	AdminPassHash  string // bcrypt

	CORSOrigins []string

	DefaultQuestionCount int
	MaxUploadBytes       int64
}

func FromEnv() Config {
	return Config{
		HTTPAddr:             envOr("HTTP_ADDR", ":8080"),
		DBDriver:             envOr("DB_DRIVER", "sqlite"),
		DBDSN:                envOr("DB_DSN", ""),
		BlobBasePath:         envOr("BLOB_BASE_PATH", "./data"),
		EnableAuth:           envBool("ENABLE_AUTH", false),
		AuthHMACSecret:       envOr("AUTH_HMAC_SECRET", "dev-insecure-secret"),
		AdminUser:            envOr("ADMIN_USER", "admin"),
		AdminPassHash:        envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		CORSOrigins:          csvOr("CORS_ORIGINS", "http://localhost:3000"),
		DefaultQuestionCount: envInt("DEFAULT_QUESTION_COUNT", 10),
		MaxUploadBytes:       int64(envInt("MAX_UPLOAD_BYTES", 32<<20)),
	}
}
func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
