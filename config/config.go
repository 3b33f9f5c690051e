package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	StorageDrive = "drive"
	StorageGCS   = "gcs"
)

// Config is loaded once in main and passed into constructors.
// Nothing outside this package reads the environment.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Uploads  UploadConfig
	LogLevel string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Driver      string // postgres | mongo
	PostgresURI string
	MongoURI    string
	MongoDB     string
}

type RedisConfig struct {
	Addr string
}

type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string // optional bcrypt hash; takes precedence over Password
	SessionTTL   time.Duration
}

type StorageConfig struct {
	Backend string // drive | gcs

	// Google Drive OAuth2 credentials.
	ClientID     string
	ClientSecret string
	RefreshToken string
	RootFolderID string

	// GCS alternative.
	Bucket string
}

type UploadConfig struct {
	// Dir holds multipart uploads and generated reports until the
	// submission finishes; every file in it is transient.
	Dir string
}

func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", DriverPostgres),
			PostgresURI: os.Getenv("POSTGRES_URI"),
			MongoURI:    os.Getenv("MONGO_URI"),
			MongoDB:     getEnv("MONGO_DB", "adayportal"),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Admin: AdminConfig{
			Username:     os.Getenv("ADMIN_USERNAME"),
			Password:     os.Getenv("ADMIN_PASSWORD"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			SessionTTL:   ttl,
		},
		Storage: StorageConfig{
			Backend:      getEnv("STORAGE_BACKEND", StorageDrive),
			ClientID:     os.Getenv("DRIVE_CLIENT_ID"),
			ClientSecret: os.Getenv("DRIVE_CLIENT_SECRET"),
			RefreshToken: os.Getenv("DRIVE_REFRESH_TOKEN"),
			RootFolderID: os.Getenv("DRIVE_ROOT_FOLDER_ID"),
			Bucket:       os.Getenv("GCS_BUCKET"),
		},
		Uploads: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "uploads"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.PostgresURI == "" {
			return errors.New("POSTGRES_URI environment variable is not set")
		}
	case DriverMongo:
		if c.Database.MongoURI == "" {
			return errors.New("MONGO_URI environment variable is not set")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Storage.Backend {
	case StorageDrive:
		if c.Storage.ClientID == "" || c.Storage.ClientSecret == "" || c.Storage.RefreshToken == "" {
			return errors.New("DRIVE_CLIENT_ID, DRIVE_CLIENT_SECRET and DRIVE_REFRESH_TOKEN must be set")
		}
	case StorageGCS:
		if c.Storage.Bucket == "" {
			return errors.New("GCS_BUCKET environment variable is not set")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Redis.Addr == "" {
		return errors.New("REDIS_ADDR environment variable is not set")
	}
	if c.Admin.Username == "" || (c.Admin.Password == "" && c.Admin.PasswordHash == "") {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD (or ADMIN_PASSWORD_HASH) must be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
