// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder on stderr,
//   - a rotating file sink for front-ends that own the terminal,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Info, DebugKV, ErrorKV, etc.).
//
// Services accept a context and extract the logger from it, so a session's
// fields follow every line it logs.
package logger
