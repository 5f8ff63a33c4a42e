package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/qscope/pkg/pipeline"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", "qscope")
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDGOverride(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "qscope") {
		t.Errorf("cacheDir() = %q, want XDG override", dir)
	}
}

func TestSourceOptions(t *testing.T) {
	tmp := t.TempDir()
	existing := filepath.Join(tmp, "bell.qasm")
	if err := os.WriteFile(existing, []byte("OPENQASM 2.0;\nqreg q[1];\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		arg           string
		wantSource    string
		wantAlgorithm string
	}{
		{
			name:       "existing file",
			arg:        existing,
			wantSource: existing,
		},
		{
			name:          "algorithm name",
			arg:           "teleport",
			wantAlgorithm: "teleport",
		},
		{
			name:       "url",
			arg:        "https://example.com/bell.qasm",
			wantSource: "https://example.com/bell.qasm",
		},
		{
			name:       "missing file with circuit extension",
			arg:        "no/such/dir/ghz.toml",
			wantSource: "no/such/dir/ghz.toml",
		},
		{
			name:       "unknown name falls through to path",
			arg:        "shor",
			wantSource: "shor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts pipeline.Options
			sourceOptions(&opts, tt.arg)

			if opts.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", opts.Source, tt.wantSource)
			}
			if opts.Algorithm != tt.wantAlgorithm {
				t.Errorf("Algorithm = %q, want %q", opts.Algorithm, tt.wantAlgorithm)
			}
		})
	}
}

func TestSourceOptionsFileShadowsAlgorithm(t *testing.T) {
	tmp := t.TempDir()
	shadow := filepath.Join(tmp, "qft")
	if err := os.WriteFile(shadow, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	var opts pipeline.Options
	sourceOptions(&opts, shadow)

	if opts.Source != shadow {
		t.Errorf("Source = %q, want the file path", opts.Source)
	}
	if opts.Algorithm != "" {
		t.Errorf("Algorithm = %q, want empty", opts.Algorithm)
	}
}

func TestLooksLikeCircuitFile(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"bell.qasm", true},
		{"circuit.TOML", true},
		{"state.json", true},
		{"https://example.com/bell.qasm", false},
		{"teleport", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			if got := looksLikeCircuitFile(tt.arg); got != tt.want {
				t.Errorf("looksLikeCircuitFile(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{pipeline.FormatSVG}},
		{"qasm", []string{"qasm"}},
		{"qasm,svg,latex", []string{"qasm", "svg", "latex"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(os.Stderr, LogWarn)
	root := c.RootCommand()

	want := []string{"analyze", "export", "gates", "algorithms", "pick", "history", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
