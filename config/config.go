package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Auth       AuthConfig
	Onboarding OnboardingConfig
	Locale     LocaleConfig
	Observ     ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AuthConfig struct {
	// LoginDelay is a cosmetic pause before a login verdict, mirroring
	// the hosted dashboard's simulated authentication latency.
	LoginDelay time.Duration
	SessionTTL time.Duration
}

type OnboardingConfig struct {
	// MarkApproved flips the source inquiry to APPROVED when a brand is
	// created from its pending payload. Off by default: the original
	// flow leaves the inquiry untouched.
	MarkApproved bool
}

type LocaleConfig struct {
	Default string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	loginDelayMs, _ := strconv.Atoi(getEnv("LOGIN_DELAY_MS", "800"))
	sessionTTLMin, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "480"))
	markApproved, _ := strconv.ParseBool(getEnv("ONBOARDING_MARK_APPROVED", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Auth: AuthConfig{
			LoginDelay: time.Duration(loginDelayMs) * time.Millisecond,
			SessionTTL: time.Duration(sessionTTLMin) * time.Minute,
		},
		Onboarding: OnboardingConfig{
			MarkApproved: markApproved,
		},
		Locale: LocaleConfig{
			Default: getEnv("DEFAULT_LOCALE", "ar"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
