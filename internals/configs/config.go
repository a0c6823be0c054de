package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// TutorBootstrapPassword seeds the very first tutor account when the
	// tutors table is empty. It replaces the shared panel passphrase the
	// portal used to hard-code; per-tutor credentials live in the DB.
	TutorBootstrapPassword string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	TutorBootstrapPassword = GetEnv("TUTOR_BOOTSTRAP_PASSWORD")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set, tutor panel login will be refused")
	} else {
		log.Println("✅ JWT_SECRET loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
