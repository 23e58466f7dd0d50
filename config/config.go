package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseUrl       string
	SupabaseJWTSecret string
	FrontendURL       string
	// S3 storage for profile assets (avatars / company logos)
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3PublicBaseURL   string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSwipeThreshold  int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Trailing slash would produce double slashes in the JWKS URL
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("SUPABASE_JWT_KEY", "")),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// S3 storage
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3PublicBaseURL:   strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		// Redis/Upstash
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate limiting (swipes are the hot endpoint)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitSwipeThreshold:  getEnvInt("RATE_LIMIT_SWIPE_THRESHOLD", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	if cfg.S3Bucket == "" {
		log.Println("WARNING: S3_BUCKET not configured. Profile asset uploads will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
