package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Process-wide values read by handlers and middleware. Load fills them;
// tests set them directly.
var (
	JWTKey        []byte
	AdminPassword string
	TokenTTL      = 12 * time.Hour
	Location      = time.FixedZone("JST", 9*60*60)
)

type Config struct {
	Port           string
	DBDriver       string
	DatabaseURL    string
	JWTKey         string
	AdminPassword  string
	Timezone       string
	CORSOrigins    []string
	StaleSweepSpec string
	TokenTTL       time.Duration
}

type JWTClaims struct {
	Username string
	jwt.RegisteredClaims
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("TIMEZONE", "Asia/Tokyo")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")
	v.SetDefault("STALE_SWEEP_SPEC", "@every 1h")
	v.SetDefault("TOKEN_TTL_MINUTES", 720)

	cfg := &Config{
		Port:           v.GetString("PORT"),
		DBDriver:       v.GetString("DB_DRIVER"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		JWTKey:         v.GetString("JWT_KEY"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		Timezone:       v.GetString("TIMEZONE"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		StaleSweepSpec: v.GetString("STALE_SWEEP_SPEC"),
		TokenTTL:       time.Duration(v.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}
	if cfg.JWTKey == "" {
		return nil, errors.New("JWT_KEY must be set")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_MINUTES must be positive, got %d", v.GetInt("TOKEN_TTL_MINUTES"))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load TIMEZONE %q: %w", cfg.Timezone, err)
	}

	JWTKey = []byte(cfg.JWTKey)
	AdminPassword = cfg.AdminPassword
	TokenTTL = cfg.TokenTTL
	Location = loc

	return cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
