// Package logging provides structured logging for numfield.
//
// This package wraps a global zap logger with convenience functions for the
// logging patterns used by the server and the CLI. Logging is silent unless
// a level is given explicitly or through NUMFIELD_LOG_LEVEL, so interactive
// commands never interleave log lines with their output.
//
// # Log Levels
//
//   - Debug: Field events, conformance and commit decisions, frame payloads
//   - Info: Connections, sessions, server lifecycle
//   - Warn: Rejected frames, dropped connections
//   - Error: Startup failures, write errors
//
// # Structured Logging
//
//	logging.Info("Session opened",
//	    zap.String("session", id),
//	    zap.String("profile", "eur"),
//	)
//
// Components that take an injected *zap.Logger, such as the input
// controller, receive a child logger from Named:
//
//	numinput.New(field, opts, cb, numinput.WithLogger(logging.Named("numinput")))
//
// # Specialized Logging
//
//	logging.LogConnection(remoteAddr, "websocket_upgraded")
//	logging.LogWebSocketMessage(remoteAddr, "received", payload)
//	logging.LogFieldEvent(sessionID, "input", text, start, end)
//
// # Output Format
//
// Logs are written to stderr in console format:
//
//	2025-11-25T10:30:45.123-0800  INFO  Connection event  {"remote_addr": "127.0.0.1:50412", "event": "websocket_upgraded"}
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize must be
// called before goroutines start logging.
package logging
