package s3source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/envkit/pkg/config"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

// Scheme is the URI scheme handled by Loader.
const Scheme = "s3"

const defaultMaxObjectSize int64 = 1 << 20

// S3Client defines the S3 operations used by Loader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader reads env files from S3. It is safe for concurrent use.
type Loader struct {
	client        S3Client
	maxObjectSize int64
	logger        *slog.Logger
}

// Option configures a Loader.
type Option func(*options)

type options struct {
	client       S3Client
	clientOptFns []func(*s3.Options)
	logger       *slog.Logger
}

// WithS3Client sets a pre-configured client. Useful for testing with mocks.
func WithS3Client(client S3Client) Option {
	return func(o *options) { o.client = client }
}

// WithS3ClientOption adds a custom S3 client option, applied after the
// endpoint and path-style settings from Config.
func WithS3ClientOption(fn func(*s3.Options)) Option {
	return func(o *options) { o.clientOptFns = append(o.clientOptFns, fn) }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a Loader. Unless WithS3Client is given, an AWS client is built
// from cfg and the default credential chain.
func New(ctx context.Context, cfg Config, opts ...Option) (*Loader, error) {
	o := &options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}

	client := o.client
	if client == nil {
		var err error
		if client, err = newClient(ctx, cfg, o.clientOptFns); err != nil {
			return nil, err
		}
	}

	maxSize := cfg.MaxObjectSize
	if maxSize <= 0 {
		maxSize = defaultMaxObjectSize
	}

	return &Loader{
		client:        client,
		maxObjectSize: maxSize,
		logger:        o.logger.With(logger.Source(Scheme)),
	}, nil
}

// newClient builds a read-only S3 client. Static keys are used only when both
// halves are set; otherwise the default AWS credential chain applies.
func newClient(ctx context.Context, cfg Config, optFns []func(*s3.Options)) (*s3.Client, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", ErrInvalidConfig)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		static := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(static))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return s3.NewFromConfig(awsCfg, func(so *s3.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle
		for _, fn := range optFns {
			fn(so)
		}
	}), nil
}

// Load fetches s3://bucket/key and parses it as a KEY=VALUE file.
func (l *Loader) Load(ctx context.Context, path string) (map[string]string, error) {
	bucket, key, err := ParseURI(path)
	if err != nil {
		return nil, err
	}

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		cerr := classifyS3Error(err, path)
		l.logger.DebugContext(ctx, "s3 object fetch failed", logger.Path(path), logger.Error(cerr))
		return nil, cerr
	}
	if out.Body == nil {
		return map[string]string{}, nil
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, l.maxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedToReadObject, path, err)
	}
	if int64(len(data)) > l.maxObjectSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrObjectTooLarge, path, l.maxObjectSize)
	}

	values, err := config.ParseDotenv(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	l.logger.DebugContext(ctx, "s3 object loaded", logger.Path(path), logger.Keys(len(values)))
	return values, nil
}

// ParseURI splits s3://bucket/key into its parts.
func ParseURI(uri string) (bucket, key string, err error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok || !strings.EqualFold(scheme, Scheme) {
		return "", "", fmt.Errorf("%w: %q: expected %s://bucket/key", ErrInvalidURI, uri, Scheme)
	}

	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("%w: %q: bucket and object key are required", ErrInvalidURI, uri)
	}
	return bucket, key, nil
}

// classifyS3Error converts S3 errors to fs-compatible errors.
func classifyS3Error(err error, path string) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, path)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s: bucket does not exist", ErrObjectNotFound, path)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %s", ErrObjectNotFound, path)
		case "AccessDenied", "Forbidden", "AllAccessDisabled":
			return fmt.Errorf("%w: %s", ErrAccessDenied, path)
		default:
			return fmt.Errorf("get %s failed (code: %s): %w", path, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("get %s failed: %w", path, err)
}
