package config

import (
	"log/slog"

	"github.com/dmitrymomot/envkit/pkg/logger"
	"github.com/dmitrymomot/envkit/pkg/primitive"
)

// Instance is the typed read-only view over an ingested store.
// Obtain it from Registry.Instance. A zero Instance reads the process
// environment without any ingestion check.
type Instance struct {
	store  Store
	logger *slog.Logger
}

// Get reads key from the store and coerces it to p.
// It fails with *MissingConfigurationError when the key is absent; coercion
// failures are returned from primitive.Coerce unchanged.
func (i *Instance) Get(key string, p primitive.Primitive) (any, error) {
	raw, ok := i.backing().Lookup(key)
	if !ok {
		return nil, &MissingConfigurationError{Key: key}
	}
	return primitive.Coerce(key, raw, p)
}

// GetAll resolves every field of schema in order. The first missing key or
// coercion failure aborts the call and no partial result is returned.
func (i *Instance) GetAll(schema Schema) (Resolved, error) {
	out := make(Resolved, schema.Len())
	for _, f := range schema.fields {
		v, err := i.Get(f.Key, f.Primitive)
		if err != nil {
			i.log().Debug("configuration lookup failed",
				logger.Key(f.Key),
				logger.Primitive(f.Primitive.String()),
				logger.Error(err),
			)
			return nil, err
		}
		out[f.Key] = v
	}
	return out, nil
}

// Lookup resolves a single key to T.
func Lookup[T primitive.Native](i *Instance, key string) (T, error) {
	var zero T
	raw, ok := i.backing().Lookup(key)
	if !ok {
		return zero, &MissingConfigurationError{Key: key}
	}
	return primitive.As[T](key, raw)
}

func (i *Instance) backing() Store {
	if i.store == nil {
		return OSStore{}
	}
	return i.store
}

func (i *Instance) log() *slog.Logger {
	if i.logger == nil {
		return logger.NewNop()
	}
	return i.logger
}
