package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	AI      AIConfig      `yaml:"ai"`
	Jira    JiraConfig    `yaml:"jira"`
	App     AppConfig     `yaml:"app"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type StorageConfig struct {
	DataDir   string `yaml:"data_dir"`
	DBDSN     string `yaml:"db_dsn"`
	RedisAddr string `yaml:"redis_addr"`
	// BackupKeep is how many jsonstore snapshots the hourly janitor
	// retains. Zero disables the janitor.
	BackupKeep int `yaml:"backup_keep"`
}

type AIConfig struct {
	OpenAIAPIKey string `yaml:"openai_api_key"`
	ModelName    string `yaml:"model_name"`
	AllowMockAI  bool   `yaml:"allow_mock_ai"`
	// RequestsPerMinute caps live completion calls; <= 0 disables.
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type JiraConfig struct {
	BaseURL    string `yaml:"base_url"`
	Username   string `yaml:"username"`
	APIToken   string `yaml:"api_token"`
	ProjectKey string `yaml:"project_key"`
}

type AppConfig struct {
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// Load builds the config from defaults, an optional config.yaml and the
// environment, in that order (env wins). A .env file is honored when
// present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server:  ServerConfig{Port: "8080"},
		Storage: StorageConfig{DataDir: "data", BackupKeep: 24},
		AI:      AIConfig{ModelName: "gpt-5", AllowMockAI: true, RequestsPerMinute: 20},
		App:     AppConfig{Environment: "development", Version: "1.0.0"},
	}

	if err := cfg.applyFile(os.Getenv("CONFIG_FILE")); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	if path == "" {
		path = "config.yaml"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Storage.DataDir = getEnv("DATA_DIR", c.Storage.DataDir)
	c.Storage.DBDSN = getEnv("DB_DSN", c.Storage.DBDSN)
	c.Storage.RedisAddr = getEnv("REDIS_ADDR", c.Storage.RedisAddr)
	c.Storage.BackupKeep = getEnvAsInt("BACKUP_KEEP", c.Storage.BackupKeep)
	c.AI.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.AI.OpenAIAPIKey)
	c.AI.ModelName = getEnv("MODEL_NAME", c.AI.ModelName)
	c.AI.AllowMockAI = getEnvAsBool("ALLOW_MOCK_AI", c.AI.AllowMockAI)
	c.AI.RequestsPerMinute = getEnvAsInt("OPENAI_RPM", c.AI.RequestsPerMinute)
	c.Jira.BaseURL = getEnv("JIRA_BASE_URL", c.Jira.BaseURL)
	c.Jira.Username = getEnv("JIRA_USERNAME", c.Jira.Username)
	c.Jira.APIToken = getEnv("JIRA_API_TOKEN", c.Jira.APIToken)
	c.Jira.ProjectKey = getEnv("JIRA_PROJECT_KEY", c.Jira.ProjectKey)
	c.App.Environment = getEnv("APP_ENV", c.App.Environment)
	c.App.Version = getEnv("APP_VERSION", c.App.Version)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}
