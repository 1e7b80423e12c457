package s3source

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrInvalidURI         = errors.New("invalid s3 uri")
	ErrInvalidConfig      = errors.New("invalid s3 source configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrObjectTooLarge     = errors.New("s3 object exceeds maximum allowed size")
	ErrFailedToReadObject = errors.New("failed to read s3 object")

	// ErrObjectNotFound and ErrAccessDenied wrap the fs sentinels so callers
	// can treat remote and local sources alike.
	ErrObjectNotFound = fmt.Errorf("s3 object not found: %w", fs.ErrNotExist)
	ErrAccessDenied   = fmt.Errorf("s3 access denied: %w", fs.ErrPermission)
)
