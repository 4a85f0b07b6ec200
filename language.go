package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// otherTextLabel is the catch-all for files with no recognized extension
// that still look like text.
const otherTextLabel = "Other Text"

// LanguageTable maps file extensions and exact filenames to language
// labels. It is fixed at construction; scans share it read-only.
type LanguageTable struct {
	extensions map[string]string // ".go" -> "Go", lowercase keys
	filenames  map[string]string // "dockerfile" -> "Dockerfile", lowercase keys
}

// languageDefinition is one entry of a linguist-style languages.yml,
// used to let users override the built-in table.
type languageDefinition struct {
	Type       string   `yaml:"type"`
	Extensions []string `yaml:"extensions"`
	Filenames  []string `yaml:"filenames"`
}

// NewLanguageTable builds a table from extension and filename maps.
// Keys are normalized to lowercase.
func NewLanguageTable(extensions, filenames map[string]string) *LanguageTable {
	lt := &LanguageTable{
		extensions: make(map[string]string, len(extensions)),
		filenames:  make(map[string]string, len(filenames)),
	}
	for ext, lang := range extensions {
		lt.extensions[strings.ToLower(ext)] = lang
	}
	for name, lang := range filenames {
		lt.filenames[strings.ToLower(name)] = lang
	}
	return lt
}

// Lookup resolves a path to a language label. Exact filename matches take
// precedence over extension matches.
func (lt *LanguageTable) Lookup(path string) (string, bool) {
	base := filepath.Base(path)
	if lang, ok := lt.filenames[strings.ToLower(base)]; ok {
		return lang, true
	}
	if ext := strings.ToLower(filepath.Ext(base)); ext != "" {
		if lang, ok := lt.extensions[ext]; ok {
			return lang, true
		}
	}
	return "", false
}

// Len returns the number of known extensions and filenames.
func (lt *LanguageTable) Len() int {
	return len(lt.extensions) + len(lt.filenames)
}

// LoadLanguageTable parses a languages.yml file into a table. Entries
// from the file fully replace the built-in defaults.
func LoadLanguageTable(path string) (*LanguageTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language file %s: %w", path, err)
	}

	var defs map[string]languageDefinition
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parse language file %s: %w", path, err)
	}

	lt := &LanguageTable{
		extensions: make(map[string]string),
		filenames:  make(map[string]string),
	}
	for lang, def := range defs {
		for _, ext := range def.Extensions {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			// First language to claim an extension keeps it.
			if lt.extensions[ext] == "" {
				lt.extensions[ext] = lang
			}
		}
		for _, name := range def.Filenames {
			name = strings.ToLower(name)
			if lt.filenames[name] == "" {
				lt.filenames[name] = lang
			}
		}
	}
	return lt, nil
}

// DefaultLanguages returns the built-in extension table.
func DefaultLanguages() *LanguageTable {
	return NewLanguageTable(defaultExtensionMap, defaultFilenameMap)
}

var defaultExtensionMap = map[string]string{
	// Code
	".py": "Python", ".pyw": "Python",
	".c": "C", ".h": "C",
	".cpp": "C++", ".hpp": "C++", ".cc": "C++",
	".js": "JavaScript", ".mjs": "JavaScript", ".cjs": "JavaScript",
	".jsx": "JavaScript (React)",
	".ts":  "TypeScript", ".tsx": "TypeScript",
	".java": "Java", ".rb": "Ruby", ".go": "Go", ".rs": "Rust",
	".php": "PHP", ".cs": "C#", ".swift": "Swift",
	".kt": "Kotlin", ".kts": "Kotlin", ".scala": "Scala",
	".html": "HTML", ".htm": "HTML", ".css": "CSS",
	".scss": "Sass", ".sass": "Sass", ".less": "Less",
	".sql": "SQL", ".sh": "Shell", ".bash": "Shell", ".zsh": "Shell",
	".ps1": "PowerShell", ".bat": "Batch", ".cmd": "Batch",
	".lua": "Lua", ".pl": "Perl", ".r": "R", ".dart": "Dart",
	".elm": "Elm", ".clj": "Clojure", ".ex": "Elixir", ".exs": "Elixir",
	".erl": "Erlang", ".hs": "Haskell", ".v": "Verilog/V",
	".zig": "Zig", ".nim": "Nim", ".jl": "Julia",
	".m": "Objective-C", ".mm": "Objective-C++",
	".vue": "Vue", ".svelte": "Svelte", ".asm": "Assembly",
	".dockerfile": "Dockerfile", ".mk": "Makefile",

	// Config / data / docs
	".json": "JSON", ".yaml": "YAML", ".yml": "YAML", ".toml": "TOML",
	".xml": "XML", ".ini": "INI", ".csv": "CSV",
	".md": "Markdown", ".txt": "Text", ".rst": "reStructuredText",
	".gitignore": "Git Config", ".env": "Env Config",
}

var defaultFilenameMap = map[string]string{
	"dockerfile": "Dockerfile",
	"makefile":   "Makefile",
}
