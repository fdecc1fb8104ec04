package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database  *dbConfig
	Service   *svcConfig
	Narrative *narrativeConfig
	Archive   *archiveConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"sqlite"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"planner"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address            string   `envconfig:"PLANNER_ADDRESS" default:":3443"`
	MetricsAddress     string   `envconfig:"PLANNER_METRICS_ADDRESS" default:":8080"`
	LogLevel           string   `envconfig:"PLANNER_LOG_LEVEL" default:"info"`
	BaseYear           int      `envconfig:"PLANNER_BASE_YEAR" default:"2024"`
	MaxProjectionYears int      `envconfig:"PLANNER_MAX_PROJECTION_YEARS" default:"25"`
	CorsOrigins        []string `envconfig:"PLANNER_CORS_ORIGINS" default:"*"`
	MigrationFolder    string   `envconfig:"PLANNER_MIGRATIONS_FOLDER" default:""`
	EventsTopic        string   `envconfig:"PLANNER_EVENTS_TOPIC" default:""`
}

type narrativeConfig struct {
	APIKey string `envconfig:"GOOGLE_API_KEY" default:""`
	Model  string `envconfig:"PLANNER_NARRATIVE_MODEL" default:"gemini-2.0-flash"`
}

type archiveConfig struct {
	Endpoint  string `envconfig:"PLANNER_ARCHIVE_ENDPOINT" default:""`
	Bucket    string `envconfig:"PLANNER_ARCHIVE_BUCKET" default:"ahp-planner-reports"`
	Region    string `envconfig:"PLANNER_ARCHIVE_REGION" default:""`
	AccessKey string `envconfig:"PLANNER_ARCHIVE_ACCESS_KEY" default:""`
	SecretKey string `envconfig:"PLANNER_ARCHIVE_SECRET_KEY" default:""`
	UseSSL    bool   `envconfig:"PLANNER_ARCHIVE_USE_SSL" default:"true"`
}

// Enabled reports whether an object store endpoint is configured.
func (a *archiveConfig) Enabled() bool {
	return a != nil && a.Endpoint != ""
}

// New loads an optional .env file from the working directory, then reads the
// environment. The result is cached for the life of the process.
func New() (*Config, error) {
	if singleConfig == nil {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg, err := NewDefault()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// NewDefault reads the environment into a fresh Config without caching it or
// reading .env.
func NewDefault() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
