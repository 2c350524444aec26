package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// RosterMember is a single tracked player loaded from the environment.
type RosterMember struct {
	Name  string
	Puuid string
}

// RiotConfiguration holds the API key and the regions used on the requests.
type RiotConfiguration struct {
	ApiKey string
	// Platform region for summoner/league/spectator endpoints (e.g. kr).
	Platform string
	// Routing region for match-v5 endpoints (e.g. asia).
	Routing string
}

// RedisConfiguration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// BucketConfiguration for the S3 log uploads.
type BucketConfiguration struct {
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
	Region       string
}

// RateWindow is a single rate limit window.
type RateWindow struct {
	Count         int
	ResetInterval time.Duration
}

// LimitsConfiguration holds the Riot rate limit windows.
type LimitsConfiguration struct {
	Lower        RateWindow
	Higher       RateWindow
	SlowInterval time.Duration
}

// Config is the full service configuration.
type Config struct {
	Riot   RiotConfiguration
	Redis  RedisConfiguration
	Bucket BucketConfiguration
	Limits LimitsConfiguration
	Roster []RosterMember
}

// Load reads the configuration from the environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Riot: RiotConfiguration{
			ApiKey:   os.Getenv("RIOT_API_KEY"),
			Platform: getEnvDefault("RIOT_PLATFORM_REGION", "kr"),
			Routing:  getEnvDefault("RIOT_ROUTING_REGION", "asia"),
		},
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfiguration{
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			LogBucket:    os.Getenv("BUCKET_LOG_NAME"),
			Region:       getEnvDefault("BUCKET_REGION", "auto"),
		},
		Limits: LimitsConfiguration{
			Lower: RateWindow{
				Count:         getEnvInt("RIOT_LIMIT_LOWER_COUNT", 20),
				ResetInterval: time.Second,
			},
			Higher: RateWindow{
				Count:         getEnvInt("RIOT_LIMIT_HIGHER_COUNT", 100),
				ResetInterval: 2 * time.Minute,
			},
			SlowInterval: 2 * time.Second,
		},
	}

	if cfg.Riot.ApiKey == "" {
		return nil, errors.New("RIOT_API_KEY must be set")
	}

	roster, err := loadRoster()
	if err != nil {
		return nil, err
	}
	cfg.Roster = roster

	return cfg, nil
}

// loadRoster parses the tracked players from the environment.
// The names and puuids are comma separated lists matched by position.
func loadRoster() ([]RosterMember, error) {
	puuids := splitList(os.Getenv("ROSTER_PUUIDS"))
	names := splitList(os.Getenv("ROSTER_NAMES"))

	if len(puuids) == 0 {
		return nil, errors.New("ROSTER_PUUIDS must contain at least one puuid")
	}

	members := make([]RosterMember, len(puuids))
	for i, puuid := range puuids {
		name := puuid
		if i < len(names) {
			name = names[i]
		}
		members[i] = RosterMember{
			Name:  name,
			Puuid: puuid,
		}
	}

	return members, nil
}

// splitList splits a comma separated env value, dropping empty entries.
func splitList(value string) []string {
	var result []string
	for _, entry := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(entry)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getEnvDefault returns the env value or a fallback if not set.
func getEnvDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns the env value as int or a fallback if not set/invalid.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
