// Package logging provides a process-local, concurrency-safe leveled logger
// that writes to a console stream or to a size-rotated log file.
//
// Key features
//   - Six ordered severities, TraceLevel through FatalLevel, with monotone
//     filtering against a mutable minimum
//   - One-line records carrying a local-time millisecond timestamp, the
//     producing goroutine id and the originating call site
//   - ANSI-colorized severity tags on console streams, plain tags in files
//   - Synchronous, mutex-serialized writes so concurrent producers never
//     interleave partial lines
//   - Size-based rotation with numbered backup generations (app.log,
//     app_1.log, app_2.log, ...)
//   - An optional process-wide binding next to ordinary caller-owned
//     instances
//
// Typical usage
//
//	logging.Init(os.Stdout, logging.TraceLevel)
//	defer logging.Close()
//
//	_ = logging.Configure(logging.FileSettings{
//		EnableRotation: true,
//		MaxFileSize:    1 << 20,
//		MaxBackups:     5,
//	})
//
//	_ = logging.Info("system ready")
//	_ = logging.Debugf("initializing system with value: %d", 42)
//
// Or with a caller-owned instance:
//
//	log, err := logging.NewFile("./app.log", logging.InfoLevel)
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//
//	_ = log.Warn("low battery")
package logging
