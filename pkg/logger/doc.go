// Package logger builds *slog.Logger values for envkit components and
// provides attribute helpers with consistent key names.
//
// The configuration packages are silent by default: they log through a no-op
// logger (NewNop) unless the caller passes one with an option such as
// config.WithLogger. New creates a logger configured by functional options:
//
//	log := logger.New(
//	    logger.WithDevelopment("billing"),
//	    logger.WithAttr(logger.Component("config")),
//	)
//
//	reg := config.New(config.WithLogger(log))
//
// Settings can also come from the environment (LOG_LEVEL, LOG_FORMAT):
//
//	s, err := logger.SettingsFromEnv()
//	if err != nil {
//	    return err
//	}
//	log := logger.New(logger.WithSettings(s))
//
// Attribute helpers (Path, Key, Keys, Primitive, Source, Error...) return
// slog.Attr values. Error returns an empty attribute for nil errors so it can
// be passed unconditionally.
package logger
