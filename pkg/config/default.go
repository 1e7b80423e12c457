package config

import (
	"context"
	"fmt"
)

// std backs the package-level helpers for programs that want a single
// process-wide configuration.
var std = New()

// Default returns the process-wide registry used by Ingest and GetInstance.
func Default() *Registry { return std }

// Ingest ingests path into the process environment using the default registry.
func Ingest(ctx context.Context, path string) error {
	return std.Ingest(ctx, path)
}

// GetInstance returns the accessor of the default registry.
func GetInstance() (*Instance, error) {
	return std.Instance()
}

// MustIngest works like Ingest but panics on failure.
// Use it at startup when the configuration file is required.
func MustIngest(ctx context.Context, path string) {
	if err := Ingest(ctx, path); err != nil {
		panic(fmt.Sprintf("failed to ingest configuration: %v", err))
	}
}

// MustGetInstance works like GetInstance but panics before ingestion.
func MustGetInstance() *Instance {
	inst, err := GetInstance()
	if err != nil {
		panic(fmt.Sprintf("failed to get configuration instance: %v", err))
	}
	return inst
}
