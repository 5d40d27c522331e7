package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/danevairena/SocialMediaBackend/pkg/database"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string
	LogLevel       string

	Database database.Options
	RedisURL string

	JWTSecret string
	JWTTTL    time.Duration

	AvatarBaseURL     string
	DefaultAvatarPath string

	FanoutTimeout  time.Duration
	FanoutQueueKey string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "social_media")
	v.SetDefault("DB_PORT", "5432")

	v.SetDefault("JWT_SECRET", "your_jwt_secret")
	v.SetDefault("JWT_TTL", "1h")
	v.SetDefault("AVATAR_BASE_URL", "http://localhost:3001/uploads/profile_pics/")
	v.SetDefault("DEFAULT_AVATAR_PATH", "/avatars/default-profile-icon.png")

	v.SetDefault("FANOUT_TIMEOUT", "5s")
	v.SetDefault("FANOUT_QUEUE_KEY", "notification_fanout_queue")

	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		AppEnv:         v.GetString("APP_ENV"),
		Port:           v.GetString("PORT"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:       v.GetString("LOG_LEVEL"),

		Database: database.Options{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			Debug:    v.GetString("APP_ENV") == "development",
		},
		RedisURL: v.GetString("REDIS_URL"),

		JWTSecret: v.GetString("JWT_SECRET"),

		AvatarBaseURL:     v.GetString("AVATAR_BASE_URL"),
		DefaultAvatarPath: v.GetString("DEFAULT_AVATAR_PATH"),

		FanoutQueueKey: v.GetString("FANOUT_QUEUE_KEY"),
	}

	var err error
	cfg.FanoutTimeout, err = time.ParseDuration(v.GetString("FANOUT_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid FANOUT_TIMEOUT: %w", err)
	}
	cfg.JWTTTL, err = time.ParseDuration(v.GetString("JWT_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
