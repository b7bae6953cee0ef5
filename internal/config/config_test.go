package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const validConfig = `
lint:
  tool: clang-tidy-17
  std: c++17
  timeout: "90s"
  dir: build
  extra_args:
    - -Isrc/include
  checks:
    - bugprone-*
    - performance-*
  files:
    - src/main.cpp
    - src/actor.cpp
    - src/main.cpp
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lintsweep.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func hasField(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestLoadValidConfig(t *testing.T) {
	path := writeTestConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	l := cfg.Lint
	if l.Tool != "clang-tidy-17" {
		t.Errorf("Tool = %q, want %q", l.Tool, "clang-tidy-17")
	}
	if l.Std != "c++17" {
		t.Errorf("Std = %q, want %q", l.Std, "c++17")
	}
	if l.Dir != "build" {
		t.Errorf("Dir = %q, want %q", l.Dir, "build")
	}
	if !reflect.DeepEqual(l.ExtraArgs, []string{"-Isrc/include"}) {
		t.Errorf("ExtraArgs = %v", l.ExtraArgs)
	}
	if !reflect.DeepEqual(l.Checks, []string{"bugprone-*", "performance-*"}) {
		t.Errorf("Checks = %v", l.Checks)
	}
	// Order and duplicates are preserved.
	want := []string{"src/main.cpp", "src/actor.cpp", "src/main.cpp"}
	if !reflect.DeepEqual(l.Files, want) {
		t.Errorf("Files = %v, want %v", l.Files, want)
	}

	d, err := l.TimeoutDuration()
	if err != nil {
		t.Fatalf("TimeoutDuration() error: %v", err)
	}
	if d.Seconds() != 90 {
		t.Errorf("timeout = %s, want 90s", d)
	}
}

func TestDefaultsMerge(t *testing.T) {
	path := writeTestConfig(t, `
lint:
  files:
    - a.cpp
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Lint.Tool != DefaultTool {
		t.Errorf("Tool = %q, want %q (from defaults)", cfg.Lint.Tool, DefaultTool)
	}
	if cfg.Lint.Std != DefaultStd {
		t.Errorf("Std = %q, want %q (from defaults)", cfg.Lint.Std, DefaultStd)
	}
	if !reflect.DeepEqual(cfg.Lint.Checks, DefaultChecks) {
		t.Errorf("Checks = %v, want defaults", cfg.Lint.Checks)
	}
	if d, _ := cfg.Lint.TimeoutDuration(); d != 0 {
		t.Errorf("timeout = %s, want none", d)
	}
}

func TestDefaultFilesNotApplied(t *testing.T) {
	path := writeTestConfig(t, "lint:\n  tool: clang-tidy\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Lint.Files) != 0 {
		t.Errorf("Files = %v, want empty", cfg.Lint.Files)
	}
	if !hasField(Validate(cfg), "lint.files") {
		t.Error("expected validation error for missing lint.files")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if errs := Validate(cfg); len(errs) != 0 {
		t.Fatalf("Default() is invalid: %v", errs)
	}
	if len(cfg.Lint.Files) != 7 {
		t.Errorf("len(Files) = %d, want 7", len(cfg.Lint.Files))
	}
	if cfg.Lint.Files[1] != "src/actor.cpp" || cfg.Lint.Files[5] != "src/actor.cpp" {
		t.Errorf("expected src/actor.cpp at positions 1 and 5, got %v", cfg.Lint.Files)
	}

	// Mutating a returned config must not leak into the package defaults.
	cfg.Lint.Files[0] = "changed.cpp"
	if DefaultFiles[0] != "src/main.cpp" {
		t.Error("Default() shares its slice with DefaultFiles")
	}
}

func TestValidateValidConfig(t *testing.T) {
	path := writeTestConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	errs := Validate(cfg)
	if len(errs) != 0 {
		t.Errorf("Validate() returned %d errors for valid config:", len(errs))
		for _, e := range errs {
			t.Errorf("  - %s", e)
		}
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name  string
		lint  Lint
		field string
	}{
		{"missing tool", Lint{Files: []string{"a.cpp"}, Checks: []string{"misc-*"}}, "lint.tool"},
		{"no checks", Lint{Tool: "t", Files: []string{"a.cpp"}}, "lint.checks"},
		{"empty file", Lint{Tool: "t", Files: []string{"a.cpp", " "}, Checks: []string{"misc-*"}}, "lint.files[1]"},
		{"empty check", Lint{Tool: "t", Files: []string{"a.cpp"}, Checks: []string{""}}, "lint.checks[0]"},
		{"comma in check", Lint{Tool: "t", Files: []string{"a.cpp"}, Checks: []string{"misc-*,bugprone-*"}}, "lint.checks[0]"},
		{"space in check", Lint{Tool: "t", Files: []string{"a.cpp"}, Checks: []string{"misc-*", "bug prone"}}, "lint.checks[1]"},
		{"bad timeout", Lint{Tool: "t", Files: []string{"a.cpp"}, Checks: []string{"misc-*"}, Timeout: "soon"}, "lint.timeout"},
		{"negative timeout", Lint{Tool: "t", Files: []string{"a.cpp"}, Checks: []string{"misc-*"}, Timeout: "-1s"}, "lint.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&LintConfig{Lint: tt.lint})
			if !hasField(errs, tt.field) {
				t.Errorf("expected validation error for %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateAllowsDuplicateFiles(t *testing.T) {
	cfg := &LintConfig{Lint: Lint{Tool: "t", Files: []string{"a.cpp", "a.cpp"}, Checks: []string{"misc-*"}}}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Field: "lint.tool", Message: "is required"}
	if !strings.Contains(e.Error(), "lint.tool: is required") {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTestConfig(t, "not: [valid: yaml: !!!")
	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadDefaultNotFound(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected built-in defaults, got %+v", cfg.Lint)
	}
}

func TestLoadDefaultFromCurrentDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	content := `
lint:
  files:
    - local.cpp
`
	if err := os.WriteFile(filepath.Join(dir, "lintsweep.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Lint.Files, []string{"local.cpp"}) {
		t.Errorf("Files = %v, want [local.cpp]", cfg.Lint.Files)
	}
}

func TestLoadDefaultFromHome(t *testing.T) {
	t.Chdir(t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".lintsweep"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "lint:\n  tool: my-tidy\n  files: [home.cpp]\n"
	if err := os.WriteFile(filepath.Join(home, ".lintsweep", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if cfg.Lint.Tool != "my-tidy" {
		t.Errorf("Tool = %q, want %q", cfg.Lint.Tool, "my-tidy")
	}
}
