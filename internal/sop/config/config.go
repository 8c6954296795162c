package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI string
	Port     string
	DBName   string

	DocumentsCollection  string
	OperationsCollection string
	ApproversCollection  string
	HistoryCollection    string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Approval workflow
	AutoApproveDays int
	SweepInterval   time.Duration
	SweeperEnabled  bool

	// Authentication throttle
	AuthMaxAttempts   int
	AuthAttemptWindow time.Duration

	// Notifications
	NotifyEnabled   bool
	SMTPHost        string
	SMTPPort        string
	SMTPFrom        string
	NotifyRecipient string

	// Bootstrap approver (seeded when the collection is empty)
	DefaultApproverUsername string
	DefaultApproverPassword string
	DefaultApproverName     string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Port:     getEnv("PORT", "8080"),
		DBName:   getEnv("DB_NAME", "sopdocs_db"),

		DocumentsCollection:  getEnv("COLLECTION_DOCUMENTS", "sop_documents"),
		OperationsCollection: getEnv("COLLECTION_OPERATIONS", "pending_operations"),
		ApproversCollection:  getEnv("COLLECTION_APPROVERS", "approvers"),
		HistoryCollection:    getEnv("COLLECTION_HISTORY", "action_history"),

		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),

		AutoApproveDays: getEnvInt("AUTO_APPROVE_DAYS", 7),
		SweepInterval:   getEnvDuration("SWEEP_INTERVAL", time.Hour),
		SweeperEnabled:  getEnvBool("SWEEPER_ENABLED", true),

		AuthMaxAttempts:   getEnvInt("AUTH_MAX_ATTEMPTS", 5),
		AuthAttemptWindow: getEnvDuration("AUTH_ATTEMPT_WINDOW", 15*time.Minute),

		NotifyEnabled:   getEnvBool("NOTIFY_ENABLED", false),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getEnv("SMTP_PORT", "25"),
		SMTPFrom:        getEnv("SMTP_FROM", "sopdocs@localhost"),
		NotifyRecipient: getEnv("NOTIFY_RECIPIENT", "admin@localhost"),

		DefaultApproverUsername: getEnv("DEFAULT_APPROVER_USERNAME", "admin"),
		DefaultApproverPassword: getEnv("DEFAULT_APPROVER_PASSWORD", ""),
		DefaultApproverName:     getEnv("DEFAULT_APPROVER_NAME", "Administrator"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.AutoApproveDays <= 0 {
		return fmt.Errorf("AUTO_APPROVE_DAYS must be positive")
	}
	if c.AuthMaxAttempts <= 0 {
		return fmt.Errorf("AUTH_MAX_ATTEMPTS must be positive")
	}
	if c.AuthAttemptWindow <= 0 {
		return fmt.Errorf("AUTH_ATTEMPT_WINDOW must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvBool(key string, fallback bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Try parsing as duration string? e.g. "10s"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
