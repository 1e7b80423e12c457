package s3source

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains the S3 connection settings.
type Config struct {
	Region         string `env:"ENVKIT_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ENVKIT_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"ENVKIT_S3_SECRET_KEY"`
	Endpoint       string `env:"ENVKIT_S3_ENDPOINT"`                             // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"ENVKIT_S3_FORCE_PATH_STYLE"`                     // For S3-compatible services like MinIO
	MaxObjectSize  int64  `env:"ENVKIT_S3_MAX_OBJECT_SIZE" envDefault:"1048576"` // Bytes; larger objects are rejected
}

// ConfigFromEnv parses Config from the process environment.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}
