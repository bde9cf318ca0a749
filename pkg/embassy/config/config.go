// Package config wires environment configuration into a running service.
package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy"
	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/notify"
	"github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/repo/memory"
	repopg "github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/repo/postgres"
	fsstorage "github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/storage/fs"
	memorystorage "github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/storage/memory"
	s3storage "github.com/mmswflow-upb/sudan-embassy-sub000/pkg/embassy/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig from the environment, applies the
// supplied options on top, then validates the result.
func Load(opts ...Option) (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WithDatabase overrides the database settings.
func WithDatabase(dbType, url string) Option {
	return func(c *ServerConfig) error {
		c.DatabaseType = dbType
		c.DatabaseURL = url
		return nil
	}
}

// WithStorageBackend overrides the storage backend type.
func WithStorageBackend(backend string) Option {
	return func(c *ServerConfig) error {
		c.StorageBackend = backend
		return nil
	}
}

// ServerConfig represents server configuration for the embassy service
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// Database configuration
	DatabaseType string `env:"DATABASE_TYPE" env-default:"memory"` // "memory", "postgres"
	DatabaseURL  string `env:"DATABASE_URL"`

	// Storage configuration
	StorageBackend string `env:"STORAGE_BACKEND" env-default:"memory"` // "memory", "fs", "s3"
	FS             FSConfig
	S3             S3Config

	// Auth configuration
	JWTSecret      string        `env:"JWT_SECRET" env-default:"development-secret"`
	SessionTTL     time.Duration `env:"SESSION_TTL" env-default:"12h"`
	UploadMaxBytes int64         `env:"UPLOAD_MAX_BYTES" env-default:"10485760"`

	// Notification configuration
	SMTP        SMTPConfig
	NotifyEmail string `env:"NOTIFY_EMAIL"`
}

// FSConfig configures the filesystem storage backend
type FSConfig struct {
	BaseDir   string `env:"FS_BASE_DIR" env-default:"./data/storage"`
	URLPrefix string `env:"FS_URL_PREFIX" env-default:"http://localhost:8080/files"`
}

// S3Config configures the S3 storage backend
type S3Config struct {
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	Bucket          string `env:"AWS_S3_BUCKET"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint        string `env:"AWS_S3_ENDPOINT"`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	PublicBaseURL   string `env:"AWS_S3_PUBLIC_BASE_URL"`
	CreateBucket    bool   `env:"AWS_S3_CREATE_BUCKET" env-default:"false"`
}

// SMTPConfig configures the SMTP notifier. Host empty disables mail.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" env-default:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.DatabaseType != "memory" && c.DatabaseType != "postgres" {
		return errors.New("database_type must be 'memory' or 'postgres'")
	}

	if c.DatabaseType == "postgres" && c.DatabaseURL == "" {
		return errors.New("database_url is required when using postgres")
	}

	switch c.StorageBackend {
	case "memory", "fs":
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("s3 bucket is required when using s3 storage")
		}
	default:
		return fmt.Errorf("unsupported storage backend type: %s", c.StorageBackend)
	}

	if c.Environment == "production" && c.JWTSecret == "development-secret" {
		return errors.New("jwt_secret must be set in production")
	}

	return nil
}

// BuildRepository creates a Repository based on the configuration. For
// postgres it also applies pending schema migrations.
func (c *ServerConfig) BuildRepository(ctx context.Context) (embassy.Repository, error) {
	switch c.DatabaseType {
	case "memory":
		return memory.New(), nil
	case "postgres":
		if err := repopg.Migrate(c.DatabaseURL); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		pool, err := pgxpool.New(ctx, c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
}

// BuildBlobStore creates a BlobStore based on the configuration
func (c *ServerConfig) BuildBlobStore() (embassy.BlobStore, error) {
	switch c.StorageBackend {
	case "memory":
		return memorystorage.New("memory://blobs"), nil
	case "fs":
		return fsstorage.New(fsstorage.Config{
			BaseDir:   c.FS.BaseDir,
			URLPrefix: c.FS.URLPrefix,
		})
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:                 c.S3.Region,
			Bucket:                 c.S3.Bucket,
			AccessKeyID:            c.S3.AccessKeyID,
			SecretAccessKey:        c.S3.SecretAccessKey,
			Endpoint:               c.S3.Endpoint,
			UsePathStyle:           c.S3.UsePathStyle,
			PublicBaseURL:          c.S3.PublicBaseURL,
			CreateBucketIfNotExist: c.S3.CreateBucket,
		})
	default:
		return nil, fmt.Errorf("unsupported storage backend type: %s", c.StorageBackend)
	}
}

// BuildNotifier creates a Notifier based on the configuration. Without
// an SMTP host, notifications are silently dropped.
func (c *ServerConfig) BuildNotifier() (embassy.Notifier, error) {
	if c.SMTP.Host == "" {
		return embassy.NewNoopNotifier(), nil
	}
	return notify.New(notify.Config{
		Host:     c.SMTP.Host,
		Port:     c.SMTP.Port,
		Username: c.SMTP.Username,
		Password: c.SMTP.Password,
		From:     c.SMTP.From,
	})
}

// BuildService creates the content service from the configuration
func (c *ServerConfig) BuildService(ctx context.Context) (embassy.Service, error) {
	repo, err := c.BuildRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	notifier, err := c.BuildNotifier()
	if err != nil {
		return nil, fmt.Errorf("failed to build notifier: %w", err)
	}

	return embassy.New(
		embassy.WithRepository(repo),
		embassy.WithNotifier(notifier),
		embassy.WithDefaultNotifyAddress(c.NotifyEmail),
	)
}

// BuildStorageService creates the upload proxy from the configuration
func (c *ServerConfig) BuildStorageService() (embassy.StorageService, error) {
	store, err := c.BuildBlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build storage backend: %w", err)
	}

	return embassy.NewStorageService(embassy.WithBlobStore(store))
}
