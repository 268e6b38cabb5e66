package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/framer/pkg/errors"
)

// execute runs the root command with args and returns its stdout. Config
// lookups are pointed at an empty directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets error: %v", err)
	}
	assertContains(t, out, "ruby", "dark_angel", "puffins", "Dark Angel", "builtin", "23.70 cm - 24.30 cm")
}

func TestPresetsCommandWithFile(t *testing.T) {
	path := writeTemp(t, "presets.toml", `
[presets.harbour]
name = "Harbour"
width_min_cm = 40
width_max_cm = 40.5
height_min_cm = 30
height_max_cm = 30
hide_left_cm = 1
hide_top_cm = 1
hide_right_cm = 1
hide_bottom_cm = 1
`)

	out, err := execute(t, "presets", "--presets", path)
	if err != nil {
		t.Fatalf("presets error: %v", err)
	}
	assertContains(t, out, "harbour", "Harbour", "30.00 cm", "ruby")
}

func TestPartsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want []string
	}{
		{
			name: "centimeters",
			args: []string{"parts", "ruby"},
			want: []string{"bottom", "33.46 cm", "41.96 cm", "23.30 cm", "31.80 cm", "3.00 cm", "2.70 cm", "150.84 cm"},
		},
		{
			name: "default preset",
			args: []string{"parts"},
			want: []string{"Ruby cut list (ruby)"},
		},
		{
			name: "tape flag",
			args: []string{"parts", "--units", "tape"},
			want: []string{`13 3/16"`, `16 17/32"`},
		},
		{
			name: "tape from environment",
			args: []string{"parts"},
			env:  map[string]string{"FRAMER_UNITS": "tape", "FRAMER_TAPE_DENOMINATOR": "16"},
			want: []string{`13 3/16"`, `16 9/16"`},
		},
		{
			name: "inches",
			args: []string{"parts", "--units", "in"},
			want: []string{"13.173 in"},
		},
		{
			name: "stock width as tape reading",
			args: []string{"parts", "--stock-width", "1 1/2"},
			want: []string{"30.92 cm", `1.5" x 1"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("%v error: %v", tt.args, err)
			}
			assertContains(t, out, tt.want...)
		})
	}
}

func TestPartsJSON(t *testing.T) {
	out, err := execute(t, "parts", "dark_angel", "--json")
	if err != nil {
		t.Fatalf("parts --json error: %v", err)
	}

	var doc struct {
		Painting struct {
			Name string `json:"name"`
		} `json:"painting"`
		Parts []struct {
			Side string `json:"side"`
		} `json:"parts"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Painting.Name != "Dark Angel" || len(doc.Parts) != 4 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout", "ruby")
	if err != nil {
		t.Fatalf("layout error: %v", err)
	}
	assertContains(t, out,
		"painting (max)", "painting (min)", "opening", "exterior",
		"(0.00, 0.00) (33.46, 0.00) (33.46, 41.96) (0.00, 41.96)",
		"23.30 cm x 31.80 cm",
	)
}

func TestLayoutJSON(t *testing.T) {
	out, err := execute(t, "layout", "--json")
	if err != nil {
		t.Fatalf("layout --json error: %v", err)
	}
	var doc struct {
		Boundaries map[string][][2]float64 `json:"boundaries"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(doc.Boundaries["exterior"]) != 5 {
		t.Errorf("exterior = %v, want 5 points", doc.Boundaries["exterior"])
	}
}

func TestConfigFile(t *testing.T) {
	path := writeTemp(t, "framer.toml", `
units = "in"

[tape]
denominator = 8
`)

	out, err := execute(t, "parts", "--config", path)
	if err != nil {
		t.Fatalf("parts --config error: %v", err)
	}
	assertContains(t, out, "13.173 in")

	out, err = execute(t, "parts", "--config", path, "--units", "tape")
	if err != nil {
		t.Fatalf("parts --config --units error: %v", err)
	}
	// 33.46 cm = 13.173", rounded up to the next 1/8
	assertContains(t, out, `13 1/4"`)
}

func TestDefaultConfigLocation(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte(`units = "tape"`), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	t.Setenv("XDG_CONFIG_HOME", dir)
	root := New(&stderr, LogInfo).RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"parts"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("parts error: %v", err)
	}
	assertContains(t, stdout.String(), `13 3/16"`)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown preset", []string{"parts", "mona_lisa"}, errors.ErrCodePresetNotFound},
		{"bad stock width", []string{"parts", "--stock-width", "wide"}, errors.ErrCodeInvalidUnits},
		{"zero stock width", []string{"parts", "--stock-width", "0"}, errors.ErrCodeInvalidDimension},
		{"bad units", []string{"parts", "--units", "furlongs"}, errors.ErrCodeInvalidUnits},
		{"bad denominator", []string{"parts", "--denominator", "3"}, errors.ErrCodeInvalidUnits},
		{"bad rounding", []string{"parts", "--rounding", "sideways"}, errors.ErrCodeInvalidUnits},
		{"missing preset file", []string{"presets", "--presets", "/nonexistent/presets.toml"}, errors.ErrCodeFileNotFound},
		{"missing config file", []string{"parts", "--config", "/nonexistent/framer.toml"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"render", "-f", "gif"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("%v error = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(out, appName) {
				t.Errorf("completion %s output should mention %s", shell, appName)
			}
		})
	}
}
