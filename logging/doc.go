// Package logging provides a minimal logging interface and adapters for the
// module.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that stores, the session manager and host applications use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - SessionLogger with contextual cloning and domain helpers for tool
//     calls, validation runs and thread updates
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	manager := contextagent.New(func(o *contextagent.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
