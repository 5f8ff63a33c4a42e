package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateCircuitName validates a circuit name for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateCircuitName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCircuit, "circuit name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidCircuit, "circuit name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCircuit, "circuit name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidCircuit, "circuit name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// gateNameRegex matches valid gate identifiers: a lowercase letter followed
// by lowercase letters, digits, or underscores.
var gateNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateGateName validates a gate identifier.
func ValidateGateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidGate, "gate name cannot be empty")
	}

	if !gateNameRegex.MatchString(name) {
		return New(ErrCodeInvalidGate, "invalid gate name: %q", name)
	}

	return nil
}

// algorithmNameRegex matches valid algorithm identifiers.
var algorithmNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateAlgorithmName validates an algorithm template identifier.
func ValidateAlgorithmName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAlgorithm, "algorithm name cannot be empty")
	}

	if !algorithmNameRegex.MatchString(name) {
		return New(ErrCodeInvalidAlgorithm, "invalid algorithm name: %q", name)
	}

	return nil
}

// basisLabelRegex matches computational basis labels ("0", "1", "01", "10", ...).
var basisLabelRegex = regexp.MustCompile(`^[01]+$`)

// ValidateBasisLabel validates a computational basis state label.
func ValidateBasisLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidState, "basis label cannot be empty")
	}

	if !basisLabelRegex.MatchString(label) {
		return New(ErrCodeInvalidState, "invalid basis label: %q", label)
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
