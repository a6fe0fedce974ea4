package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Host         string        `yaml:"host"`
		Port         int           `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	// Site holds the static content the SEO endpoints project into JSON-LD.
	Site struct {
		Organization OrganizationConfig `yaml:"organization"`
		Events       []EventConfig      `yaml:"events"`
		Projects     []ProjectConfig    `yaml:"projects"`
	} `yaml:"site"`
}

// OrganizationConfig is the organization-level site metadata.
type OrganizationConfig struct {
	Name        string   `yaml:"name"`
	URL         string   `yaml:"url"`
	Logo        string   `yaml:"logo"`
	Description string   `yaml:"description"`
	Email       string   `yaml:"email"`
	Telephone   string   `yaml:"telephone"`
	SameAs      []string `yaml:"same_as"`
	Street      string   `yaml:"street"`
	Locality    string   `yaml:"locality"`
	Region      string   `yaml:"region"`
	PostalCode  string   `yaml:"postal_code"`
	Country     string   `yaml:"country"`
}

// EventConfig is one event entry on the events page.
type EventConfig struct {
	Name         string `yaml:"name"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Description  string `yaml:"description"`
	Image        string `yaml:"image"`
	URL          string `yaml:"url"`
	LocationName string `yaml:"location_name"`
	Price        string `yaml:"price"`
	Currency     string `yaml:"currency"`
	TicketURL    string `yaml:"ticket_url"`
}

// ProjectConfig is one program/project entry.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Image       string `yaml:"image"`
	StartDate   string `yaml:"start_date"`
}

// Load reads configuration from the YAML file at path, overlaid with
// environment variables (a .env file is honored when present). A missing
// config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	// Load .env if it exists; ignore the error when it doesn't.
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeout = 30 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Server.IdleTimeout = 60 * time.Second
	cfg.Database.Path = "data/badger"
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
