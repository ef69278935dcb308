package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// reservation sweep
	SweepInterval time.Duration
	// pending reservations this long past their time are auto-cancelled
	SweepGrace time.Duration

	OTPTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "pos.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		SweepInterval: time.Duration(getEnvInt("SWEEP_INTERVAL_MIN", 5)) * time.Minute,
		SweepGrace:    time.Duration(getEnvInt("SWEEP_GRACE_MIN", 30)) * time.Minute,
		OTPTTL:        time.Duration(getEnvInt("OTP_TTL_MIN", 5)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
