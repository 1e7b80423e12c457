package config

import (
	"context"
	"os"
	"strings"
)

// Loader reads the source at path and returns its key/value pairs.
// Implementations report failures with errors that wrap fs.ErrNotExist or
// fs.ErrPermission, or that implement Diagnostic.
type Loader interface {
	Load(ctx context.Context, path string) (map[string]string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (map[string]string, error)

func (f LoaderFunc) Load(ctx context.Context, path string) (map[string]string, error) {
	return f(ctx, path)
}

// DotenvLoader reads KEY=VALUE files from the local filesystem.
// Values are returned verbatim; see ParseDotenv.
type DotenvLoader struct{}

func (DotenvLoader) Load(ctx context.Context, path string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseDotenv(f)
}

// RouteLoader dispatches on the URI scheme of path ("s3" for
// "s3://bucket/key"). Paths without a registered scheme go to Fallback,
// or to DotenvLoader when Fallback is nil.
type RouteLoader struct {
	Routes   map[string]Loader
	Fallback Loader
}

func (r RouteLoader) Load(ctx context.Context, path string) (map[string]string, error) {
	if scheme, _, ok := strings.Cut(path, "://"); ok {
		if l, found := r.Routes[strings.ToLower(scheme)]; found {
			return l.Load(ctx, path)
		}
	}
	if r.Fallback != nil {
		return r.Fallback.Load(ctx, path)
	}
	return DotenvLoader{}.Load(ctx, path)
}
