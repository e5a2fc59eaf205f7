package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// New snapshots the process environment as a map.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// Config is the explicit configuration struct constructed once at startup
// and passed to every component that needs it. There is no ambient global.
type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	DBType     string
	DSN        string
	ReplicaDSN string

	JWTSecret string
	TokenTTL  time.Duration

	UploadBackend string
	UploadDir     string
	UploadPath    string
	S3Bucket      string
	S3BaseURL     string

	AllowedOrigins []string

	SeedAdminEmail    string
	SeedAdminPassword string
}

// FromEnv builds a Config from an environment snapshot, applying defaults
// suitable for local development.
func FromEnv(env map[string]string) Config {
	cfg := Config{
		Port:         GetString(env, "PORT", "8080"),
		ReadTimeout:  time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout: time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,

		DBType:     GetString(env, "DB_TYPE", "sqlite"),
		DSN:        GetString(env, "DATABASE_DSN", "dreamcraft.db"),
		ReplicaDSN: GetString(env, "DB_REPLICA_DSN", ""),

		JWTSecret: GetString(env, "JWT_SECRET", ""),
		TokenTTL:  time.Duration(GetInt(env, "TOKEN_TTL_MINUTES", 60)) * time.Minute,

		UploadBackend: GetString(env, "UPLOAD_BACKEND", "disk"),
		UploadDir:     GetString(env, "UPLOAD_DIR", "static/images"),
		UploadPath:    GetString(env, "UPLOAD_PATH", "/static/images"),
		S3Bucket:      GetString(env, "S3_BUCKET", ""),
		S3BaseURL:     GetString(env, "S3_BASE_URL", ""),

		SeedAdminEmail:    GetString(env, "SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: GetString(env, "SEED_ADMIN_PASSWORD", ""),
	}

	origins := GetString(env, "ACCEPTED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg
}
