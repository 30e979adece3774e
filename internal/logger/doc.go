// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext),
//   - level parsing and file output for the terminal UI.
//
// The UI owns stdout, so logs go to a file or nowhere.
package logger
