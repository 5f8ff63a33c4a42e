package errors

import (
	"testing"
)

func TestValidateCircuitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "bell_state", false},
		{"valid with dash", "grover-demo", false},
		{"valid with space", "Bell State", false},
		{"valid with dot", "qft.v2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCircuitName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCircuitName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single letter", "h", false},
		{"two letter", "cx", false},
		{"with digit", "u3", false},
		{"with underscore", "my_gate", false},

		{"empty", "", true},
		{"uppercase", "H", true},
		{"starts with digit", "3u", true},
		{"with dash", "c-x", true},
		{"with space", "c x", true},
		{"special chars", "cx!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGate) {
				t.Errorf("ValidateGateName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateAlgorithmName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "grover", false},
		{"with underscore", "deutsch_jozsa", false},
		{"with digit", "bb84", false},

		{"empty", "", true},
		{"uppercase", "Grover", true},
		{"with dash", "deutsch-jozsa", true},
		{"starts with digit", "84bb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlgorithmName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAlgorithmName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBasisLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single zero", "0", false},
		{"single one", "1", false},
		{"two qubit", "01", false},
		{"three qubit", "101", false},

		{"empty", "", true},
		{"digits", "012", true},
		{"letters", "ab", true},
		{"ket notation", "|01>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBasisLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBasisLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "circuits/bell.toml", false},
		{"valid nested", "examples/circuits/grover.qasm", false},
		{"valid filename only", "report.txt", false},
		{"valid with dots", "v1.2.3/circuit.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidCircuit,
		ErrCodeInvalidGate,
		ErrCodeInvalidState,
		ErrCodeInvalidFormat,
		ErrCodeInvalidRenderer,
		ErrCodeInvalidAlgorithm,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeGateNotFound,
		ErrCodeAlgorithmNotFound,
		ErrCodeFileNotFound,
		ErrCodeReportNotFound,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeRateLimited,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
