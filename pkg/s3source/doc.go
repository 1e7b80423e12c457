// Package s3source loads KEY=VALUE configuration files stored in Amazon S3 or
// an S3-compatible service (MinIO, Wasabi, ...).
//
// Loader implements config.Loader for paths of the form s3://bucket/key. The
// object is fetched with GetObject and parsed with config.ParseDotenv, so the file
// format is identical to local .env files. Failures are mapped onto fs
// sentinels so config.Registry classifies them the same way as local files:
//
//   - NoSuchKey / NoSuchBucket / NotFound wrap fs.ErrNotExist
//     (config.ErrMissingConfigurationFile).
//   - AccessDenied / Forbidden wrap fs.ErrPermission
//     (config.ErrConfigurationFilePermission).
//   - Everything else is reported as is (config.ErrUnknownConfigurationFile).
//
// # Usage
//
//	cfg, err := s3source.ConfigFromEnv() // ENVKIT_S3_* variables
//	if err != nil {
//	    return err
//	}
//	src, err := s3source.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//
//	reg := config.New(config.WithLoader(config.RouteLoader{
//	    Routes: map[string]config.Loader{s3source.Scheme: src},
//	}))
//	if err := reg.Ingest(ctx, "s3://my-bucket/prod/.env"); err != nil {
//	    return err
//	}
//
// Tests can inject a mock with WithS3Client.
package s3source
