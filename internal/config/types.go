package config

// LintConfig is the top-level configuration structure parsed from YAML.
type LintConfig struct {
	Lint Lint `yaml:"lint"`
}

// Lint defines the analysis tool, how to call it, and what to run it on.
type Lint struct {
	Tool      string   `yaml:"tool"`
	Std       string   `yaml:"std"`
	Timeout   string   `yaml:"timeout,omitempty"`
	Dir       string   `yaml:"dir,omitempty"`
	ExtraArgs []string `yaml:"extra_args,omitempty"`
	Checks    []string `yaml:"checks"`
	Files     []string `yaml:"files"`
}

const (
	DefaultTool = "clang-tidy"
	DefaultStd  = "c++11"
)

// DefaultChecks is the rule selector set used when a config names none.
var DefaultChecks = []string{
	"cppcoreguidelines-*",
	"bugprone-*",
	"performance-*",
	"clang-analyzer-*",
	"portability-*",
	"readability-*",
	"misc-*",
}

// DefaultFiles is the built-in file list. src/actor.cpp appears twice and is
// linted twice.
var DefaultFiles = []string{
	"src/main.cpp",
	"src/actor.cpp",
	"src/display.cpp",
	"src/gameboard.cpp",
	"src/input.cpp",
	"src/actor.cpp",
	"src/item.cpp",
}

// Default returns the built-in configuration.
func Default() *LintConfig {
	return &LintConfig{Lint: Lint{
		Tool:   DefaultTool,
		Std:    DefaultStd,
		Checks: append([]string(nil), DefaultChecks...),
		Files:  append([]string(nil), DefaultFiles...),
	}}
}
