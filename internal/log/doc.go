// Package log provides logging with automatic masking of sensitive
// information, built on top of the standard slog package.
//
// Analyzed sites are identified by URL, and those URLs sometimes carry API
// keys, session identifiers or basic-auth credentials. SecureHandler masks:
//   - Attributes whose name denotes a secret (token, password, cookie, ...)
//   - Values that look like secrets (JWTs, bearer tokens, API keys)
//   - Passwords and sensitive query parameters of URLs inside messages
//     and string attributes
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Info("exporting report",
//	    "url", "https://example.com/?token=abc", // logged as token=***REDACTED***
//	)
//	slog.SetDefault(logger)
package log
