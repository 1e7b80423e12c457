// Package config ingests KEY=VALUE configuration files into the environment
// once and exposes a typed, schema-driven accessor over it.
//
// It wraps github.com/joho/godotenv for file parsing and delegates value
// conversion to the primitive package. Values are taken literally: "$VAR"
// and "${VAR}" are not expanded. The API is small:
//
//   - Registry.Ingest loads a file into the Store (the process environment by
//     default). It succeeds at most once per registry.
//   - Registry.Instance returns the accessor, only after ingestion, and always
//     the same pointer.
//   - Instance.GetAll resolves a Schema into a Resolved map of typed values.
//
// # Architecture
//
// A Registry holds two pieces of state guarded by a sync.RWMutex: the
// ingested flag and the lazily created *Instance. The flag moves from false to
// true exactly once. Failed ingestions leave the registry and the store
// untouched so the caller can retry with a different path.
//
// Sources are read through the Loader interface. DotenvLoader reads local
// files; RouteLoader dispatches on the URI scheme so remote sources (see
// package s3source) can be plugged in:
//
//	s3, err := s3source.New(ctx, s3cfg)
//	if err != nil {
//	    return err
//	}
//	reg := config.New(config.WithLoader(config.RouteLoader{
//	    Routes: map[string]config.Loader{"s3": s3},
//	}))
//
// # Usage
//
//	reg := config.New()
//	if err := reg.Ingest(ctx, ".env"); err != nil {
//	    log.Fatalf("ingest: %v", err)
//	}
//
//	inst, err := reg.Instance()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := inst.GetAll(config.NewSchema(
//	    config.Field{Key: "PORT", Primitive: primitive.Number},
//	    config.Field{Key: "DEBUG", Primitive: primitive.Boolean},
//	))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port := cfg.Number("PORT")
//
// Programs that prefer a single process-wide registry can use the
// package-level Ingest, GetInstance, MustIngest and MustGetInstance helpers,
// which operate on Default().
//
// Schemas can be declared in YAML, in which case document order is kept:
//
//	schema, err := config.ParseSchemaYAML([]byte("PORT: number\nDEBUG: boolean\n"))
//
// # Coercion
//
// "boolean" is true only for the exact string "true"; every other value,
// including malformed input, is false. "number" must parse as a finite float.
// "string" is returned unchanged and may be empty. See package primitive.
//
// # Error Handling
//
// Every failure is returned to the caller; nothing is retried internally.
// Errors unwrap to sentinels for errors.Is and are typed for errors.As:
//
//   - ErrAlreadyIngested (*AlreadyIngestedError): Ingest called twice.
//   - ErrMissingConfigurationFile (*MissingConfigurationFileError): no file at path.
//   - ErrConfigurationFilePermission (*ConfigurationFilePermissionError): file unreadable.
//   - ErrUnknownConfigurationFile (*UnknownConfigurationFileError): any other load failure.
//   - ErrNotIngested: Instance called before ingestion.
//   - ErrMissingConfiguration (*MissingConfigurationError): schema key absent.
//   - ErrInvalidNumber, ErrUnsupportedPrimitive: coercion failures.
//
// Loader failures are classified by diagnostic code: an error implementing
// Diagnostic supplies it directly, otherwise fs.ErrNotExist means ENOENT and
// fs.ErrPermission means EACCES.
package config
