package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
)

type Config struct {
	Port         string
	DatabasePath string
	AppEnv       string
	LogLevel     string

	ScheduleSource     string
	LeaveSource        string
	AppointmentsSource string
	SourceCacheTTL     time.Duration
	HTTPTimeout        time.Duration

	SlackBotToken      string
	SlackSigningSecret string
	SlackDigestChannel string
	DigestTime         string
	DigestDays         []domain.Weekday
	DigestWindowDays   int
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		DatabasePath: getEnv("DATABASE_PATH", "./absence-report.db"),
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", ""),

		ScheduleSource:     getEnv("SCHEDULE_SOURCE", ""),
		LeaveSource:        getEnv("LEAVE_SOURCE", ""),
		AppointmentsSource: getEnv("APPOINTMENTS_SOURCE", ""),
		SourceCacheTTL:     getDurationEnv("SOURCE_CACHE_TTL", 10*time.Minute),
		HTTPTimeout:        getDurationEnv("HTTP_TIMEOUT", 30*time.Second),

		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackDigestChannel: getEnv("SLACK_DIGEST_CHANNEL", ""),
		DigestTime:         getEnv("DIGEST_TIME", "09:00"),
		DigestDays:         getWeekdaysEnv("DIGEST_DAYS", domain.DefaultDigestDays),
		DigestWindowDays:   getIntEnv("DIGEST_WINDOW_DAYS", 7),
	}
}

// IsProduction reports whether APP_ENV selects the production setup
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.AppEnv)
	return env == "production" || env == "prod"
}

// DigestEnabled is false until both a bot token and a channel are configured
func (c *Config) DigestEnabled() bool {
	return c.SlackBotToken != "" && c.SlackDigestChannel != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getWeekdaysEnv reads a comma separated list like "1,2,3" or "lunes,miércoles"
func getWeekdaysEnv(key string, defaultValue []domain.Weekday) []domain.Weekday {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}

	var days []domain.Weekday
	seen := make(map[domain.Weekday]bool)
	for _, part := range strings.Split(raw, ",") {
		day, ok := domain.ParseWeekday(part)
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	if len(days) == 0 {
		return defaultValue
	}
	return days
}
