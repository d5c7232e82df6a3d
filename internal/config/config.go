package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

type Config struct {
	Supabase SupabaseConfig
	Database DatabaseConfig
}

type SupabaseConfig struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func New() *Config {
	return &Config{
		Supabase: SupabaseConfig{
			URL:            getEnv("SUPABASE_URL", ""),
			AnonKey:        getEnv("SUPABASE_ANON_KEY", ""),
			ServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ValidateAdmin checks the settings needed for /auth/v1/admin calls.
func (c *Config) ValidateAdmin() error {
	return c.require(map[string]string{
		"SUPABASE_URL":              c.Supabase.URL,
		"SUPABASE_SERVICE_ROLE_KEY": c.Supabase.ServiceRoleKey,
	})
}

// ValidateAnon checks the settings needed for user-facing auth calls.
func (c *Config) ValidateAnon() error {
	return c.require(map[string]string{
		"SUPABASE_URL":      c.Supabase.URL,
		"SUPABASE_ANON_KEY": c.Supabase.AnonKey,
	})
}

// ValidateDatabase checks the settings needed for direct auth.users access.
func (c *Config) ValidateDatabase() error {
	return c.require(map[string]string{
		"DB_HOST":     c.Database.Host,
		"DB_PASSWORD": c.Database.Password,
	})
}

func (c *Config) require(keys map[string]string) error {
	var missing []string
	for key, value := range keys {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) GetDatabaseURL() string {
	return c.buildDatabaseURL()
}

func (c *Config) buildDatabaseURL() string {
	var sb strings.Builder

	sb.WriteString("postgres://")
	sb.WriteString(c.Database.User)
	if c.Database.Password != "" {
		sb.WriteString(":")
		sb.WriteString(c.Database.Password)
	}
	sb.WriteString("@")
	sb.WriteString(c.Database.Host)
	sb.WriteString(":")
	sb.WriteString(c.Database.Port)
	sb.WriteString("/")
	sb.WriteString(c.Database.DBName)

	if c.Database.SSLMode != "" {
		sb.WriteString("?sslmode=")
		sb.WriteString(c.Database.SSLMode)
	}

	return sb.String()
}
