package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBSource string
	Port     string

	// Simulated submission delays; zero in tests.
	CheckoutDelay    time.Duration
	ReviewDelay      time.Duration
	ReservationDelay time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using process environment")
	}

	return &Config{
		DBSource:         getEnv("DB_SOURCE", "rinku.db"),
		Port:             getEnv("PORT", "8000"),
		CheckoutDelay:    getEnvMillis("CHECKOUT_DELAY_MS", 2000),
		ReviewDelay:      getEnvMillis("REVIEW_DELAY_MS", 800),
		ReservationDelay: getEnvMillis("RESERVATION_DELAY_MS", 1500),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvMillis(key string, fallback int) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
		logrus.Warnf("invalid %s, using default", key)
	}
	return time.Duration(fallback) * time.Millisecond
}
