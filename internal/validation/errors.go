package validation

import "errors"

// Sentinel errors classifying validation failures. Callers branch on these
// with errors.Is; the wrapped message carries the tool name and details.
var (
	// ErrNotFound: the candidate binary is absent from the search locations.
	// Distinct from a found-but-failing binary so callers can suggest an
	// install instead of reporting a broken tool.
	ErrNotFound = errors.New("executable not found")
	// ErrProbeFailed: the binary ran and exited non-zero.
	ErrProbeFailed = errors.New("failed with non-zero exit code")
	// ErrUndecodableOutput: probe stdout was not valid UTF-8.
	ErrUndecodableOutput = errors.New("produced invalid utf-8 output")
	// ErrVersionMismatch: a version token was extracted but does not start
	// with the configured prefix.
	ErrVersionMismatch = errors.New("incompatible version")
	// ErrUnrecognizedVendor: a matcher is configured but found no version
	// token at all, so the binary is likely a different vendor's build.
	ErrUnrecognizedVendor = errors.New("unrecognized toolchain vendor")
	// ErrUnrecognizedTool: the logical tool name has no registered
	// resolution strategy.
	ErrUnrecognizedTool = errors.New("unrecognized tool")
	// ErrToolchainMissing: the requested rust channel is not installed.
	ErrToolchainMissing = errors.New("toolchain not installed")
)
