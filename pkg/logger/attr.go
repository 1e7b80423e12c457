package logger

import "log/slog"

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Path records a configuration source path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Key records a configuration key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Keys records how many keys an operation touched.
func Keys(n int) slog.Attr {
	return slog.Int("keys", n)
}

// Primitive records the declared primitive tag.
func Primitive(p string) slog.Attr {
	return slog.String("primitive", p)
}

// Source records the loader kind ("dotenv", "s3", ...).
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
