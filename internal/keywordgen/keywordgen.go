// Package keywordgen generates the keyword token tables of the
// scriptbuilder package from a declarative YAML keyword list.
package keywordgen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a keyword table generation run.
type Config struct {
	KeywordsFile string // Path to keywords.yml
	OutputDir    string // Output directory for the generated file
	PackageName  string // Go package name
}

// KeywordsConfig holds the keyword list loaded from keywords.yml.
type KeywordsConfig struct {
	Keywords keywordList `yaml:"keywords"`
}

// keywordList decodes the keywords sequence one node at a time. Decoding
// straight into []string lets yaml drop entries it resolves to null, so
// an unquoted Null would silently vanish instead of failing.
type keywordList []string

// UnmarshalYAML implements [yaml.Unmarshaler] for keywordList.
func (l *keywordList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected a list of keywords, got YAML kind %d", node.Kind)
	}
	list := make([]string, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return fmt.Errorf("keywords[%d]: expected a keyword name, got %s (a bare Null is YAML's null literal; quote it)", i, item.Tag)
		}
		list = append(list, item.Value)
	}
	*l = list
	return nil
}

// LoadConfig reads and parses the keywords.yml configuration file.
func LoadConfig(path string) (*KeywordsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg KeywordsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Keywords) == 0 {
		return nil, fmt.Errorf("no keywords defined in %s", path)
	}
	return &cfg, nil
}

// Run executes the keyword table generation pipeline.
func Run(cfg Config) error {
	// 1. Load the keyword list.
	kwConfig, err := LoadConfig(cfg.KeywordsFile)
	if err != nil {
		return fmt.Errorf("loading keywords config: %w", err)
	}

	// 2. Normalize and validate names.
	names, err := normalizeNames(kwConfig.Keywords)
	if err != nil {
		return err
	}

	// 3. Create the output directory.
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// 4. Emit keywords.go.
	pkgName := cfg.PackageName
	if pkgName == "" {
		pkgName = "scriptbuilder"
	}
	src, err := renderKeywords(pkgName, names)
	if err != nil {
		return fmt.Errorf("rendering keywords.go: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "keywords.go"), src, 0o644); err != nil {
		return fmt.Errorf("writing keywords.go: %w", err)
	}
	return nil
}
