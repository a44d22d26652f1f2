// Package errors provides error handling utilities for the devboot application.
//
// This package implements sentinel errors and structured error types that
// carry context about the failing operation, while staying compatible with
// the standard errors.Is and errors.As inspection functions.
//
// # Sentinel Errors
//
//   - ErrGitOperationFailed: a git subprocess failed to start or exited non-zero
//   - ErrInvalidConfiguration: flags, environment or profile values are invalid
//   - ErrInvalidScope: a scope not supported by the target (e.g. system settings)
//   - ErrInvalidProfile: the YAML profile could not be decoded
//   - ErrTemplateFetch: the ignore-file template could not be retrieved
//   - ErrAborted: the user declined to remove an existing repository
//
// # Structured Errors
//
//   - GitError: the git operation, its arguments, output and cause
//   - FetchError: the URL, status code and cause of a failed template fetch
//   - ConfigError: the offending parameter, its value and cause
//
// # Usage
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to write settings")
//	}
//
//	if errors.Is(err, errors.ErrAborted) {
//	    // user declined
//	}
package errors
