package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Planlama motoru ayarları
	DashboardWeeksAhead     int     // hasat tahmin ufku (hafta)
	PriorityHighThreshold   float64 // talep skoru >= ise high
	PriorityMediumThreshold float64 // talep skoru >= ise medium
	YieldLowPct             float64 // verim yüzdesi < ise low
	YieldHighPct            float64 // verim yüzdesi > ise high
	SuggestionPolicy        string  // market | rotation
}

func Load() *Config {
	// .env varsa yükle, yoksa sessizce devam et
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] .env dosyası yüklenmedi: %v", err)
	}

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=ciftlik port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),

		DashboardWeeksAhead:     getEnvInt("DASHBOARD_WEEKS_AHEAD", 2),
		PriorityHighThreshold:   getEnvFloat("PRIORITY_HIGH_THRESHOLD", 0.8),
		PriorityMediumThreshold: getEnvFloat("PRIORITY_MEDIUM_THRESHOLD", 0.6),
		YieldLowPct:             getEnvFloat("YIELD_LOW_PCT", 80),
		YieldHighPct:            getEnvFloat("YIELD_HIGH_PCT", 100),
		SuggestionPolicy:        getEnv("SUGGESTION_POLICY", "market"),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.DashboardWeeksAhead <= 0 {
		log.Fatal("[FATAL] DASHBOARD_WEEKS_AHEAD pozitif olmalıdır.")
	}
	if cfg.SuggestionPolicy != "market" && cfg.SuggestionPolicy != "rotation" {
		log.Fatalf("[FATAL] SUGGESTION_POLICY geçersiz: %s (market veya rotation olmalı)", cfg.SuggestionPolicy)
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[WARN] %s sayı değil, varsayılan %d kullanılıyor", key, def)
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("[WARN] %s sayı değil, varsayılan %g kullanılıyor", key, def)
	}
	return def
}
