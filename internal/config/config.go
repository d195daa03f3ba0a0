package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration. Every backing
// store gets its own section; the stores are independent and a single shared
// block would hide that.
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	// Postgres is the primary store: students plus the two relation tables.
	Postgres struct {
		Host            string `yaml:"host" env:"PG_HOST"`
		Port            string `yaml:"port" env:"PG_PORT"`
		User            string `yaml:"user" env:"PG_USER"`
		Password        string `yaml:"password" env:"PG_PASSWORD"`
		DBName          string `yaml:"dbname" env:"PG_DBNAME"`
		SSLMode         string `yaml:"sslmode" env:"PG_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"PG_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"PG_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"PG_CONN_MAX_LIFETIME"`
	} `yaml:"postgres"`

	// MySQL holds course rows.
	MySQL struct {
		Host         string `yaml:"host" env:"MYSQL_HOST"`
		Port         string `yaml:"port" env:"MYSQL_PORT"`
		User         string `yaml:"user" env:"MYSQL_USER"`
		Password     string `yaml:"password" env:"MYSQL_PASSWORD"`
		DBName       string `yaml:"dbname" env:"MYSQL_DBNAME"`
		Timeout      string `yaml:"timeout" env:"MYSQL_TIMEOUT"`
		MaxIdleConns int    `yaml:"max_idle_conns" env:"MYSQL_MAX_IDLE_CONNS"`
		MaxOpenConns int    `yaml:"max_open_conns" env:"MYSQL_MAX_OPEN_CONNS"`
	} `yaml:"mysql"`

	// Mongo holds research project documents.
	Mongo struct {
		URI      string `yaml:"uri" env:"MONGO_URI"`
		Database string `yaml:"database" env:"MONGO_DATABASE"`
	} `yaml:"mongo"`

	// Cassandra holds professor rows.
	Cassandra struct {
		Hosts    []string `yaml:"hosts" env:"CASSANDRA_HOSTS"`
		Keyspace string   `yaml:"keyspace" env:"CASSANDRA_KEYSPACE"`
		Timeout  string   `yaml:"timeout" env:"CASSANDRA_TIMEOUT"`
	} `yaml:"cassandra"`

	// Redis backs the report cache and the session table.
	Redis struct {
		Host     string `yaml:"host" env:"REDIS_HOST"`
		Port     string `yaml:"port" env:"REDIS_PORT"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Auth struct {
		SessionTTL string     `yaml:"session_ttl" env:"AUTH_SESSION_TTL"`
		Users      []SeedUser `yaml:"users"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// SeedUser declares one entry of the read-only authentication table. The
// plaintext password is hashed once at startup and discarded.
type SeedUser struct {
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Role      string `yaml:"role"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env are enough to boot locally.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Postgres.Host = "localhost"
	config.Postgres.Port = "5432"
	config.Postgres.User = "postgres"
	config.Postgres.Password = "postgres"
	config.Postgres.DBName = "academico"
	config.Postgres.SSLMode = "disable"
	config.Postgres.MaxIdleConns = 5
	config.Postgres.MaxOpenConns = 20
	config.Postgres.ConnMaxLifetime = "1h"

	config.MySQL.Host = "localhost"
	config.MySQL.Port = "3306"
	config.MySQL.User = "root"
	config.MySQL.Password = "root"
	config.MySQL.DBName = "academico_cursos"
	config.MySQL.Timeout = "5s"
	config.MySQL.MaxIdleConns = 5
	config.MySQL.MaxOpenConns = 20

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "academico_proyectos"

	config.Cassandra.Hosts = []string{"localhost"}
	config.Cassandra.Keyspace = "academico"
	config.Cassandra.Timeout = "5s"

	config.Redis.Host = "localhost"
	config.Redis.Port = "6379"
	config.Redis.DB = 0

	config.Auth.SessionTTL = "24h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Postgres.Host == "" {
		return fmt.Errorf("postgres host is required")
	}

	if config.MySQL.Host == "" {
		return fmt.Errorf("mysql host is required")
	}

	if len(config.Cassandra.Hosts) == 0 {
		return fmt.Errorf("at least one cassandra host is required")
	}

	if _, err := time.ParseDuration(config.Auth.SessionTTL); err != nil {
		return fmt.Errorf("invalid session TTL format: %w", err)
	}

	if _, err := time.ParseDuration(config.Postgres.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid postgres connection max lifetime format: %w", err)
	}

	for _, u := range config.Auth.Users {
		if u.Username == "" || u.Password == "" {
			return fmt.Errorf("auth users require both username and password")
		}
	}

	return nil
}

// GetPostgresConnectionString returns the primary store connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Postgres.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.DBName,
		sslMode,
	)
}

// GetMySQLDSN returns the course store DSN with explicit timeouts
func (c *Config) GetMySQLDSN() string {
	timeout := c.MySQL.Timeout
	if timeout == "" {
		timeout = "5s"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&timeout=%s&readTimeout=%s&writeTimeout=%s",
		c.MySQL.User,
		c.MySQL.Password,
		c.MySQL.Host,
		c.MySQL.Port,
		c.MySQL.DBName,
		timeout,
		timeout,
		timeout,
	)
}

// GetRedisAddr returns the cache store address in host:port form
func (c *Config) GetRedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// SessionTTL returns the parsed session expiry, defaulting to 24 hours.
func (c *Config) SessionTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Auth.SessionTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return ttl
}
