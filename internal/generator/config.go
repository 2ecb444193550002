package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CodeSmile-0000011110110111/LunyCodeGen/descriptor"
	"github.com/CodeSmile-0000011110110111/LunyCodeGen/scriptbuilder"
)

// DefaultConfigFile is tried when no -config flag is given.
const DefaultConfigFile = "lunycodegen.yml"

// FileConfig mirrors the optional lunycodegen.yml configuration file.
type FileConfig struct {
	Inputs     StringList   `yaml:"inputs"`
	Extensions []string     `yaml:"extensions"`
	Indent     IndentConfig `yaml:"indent"`
}

// IndentConfig selects the indent unit for generated scripts.
type IndentConfig struct {
	Style string `yaml:"style"` // "space" (default) or "tab"
	Width int    `yaml:"width"` // repetitions per level
}

// Unit returns the indent character and repeat count for the config. A
// zero width picks the style's default; an unrecognized style or a
// negative width is an error.
func (c IndentConfig) Unit() (byte, int, error) {
	char := byte(' ')
	width := c.Width
	switch c.Style {
	case "", "space":
		if width == 0 {
			width = 4
		}
	case "tab":
		char = '\t'
		if width == 0 {
			width = 1
		}
	default:
		return 0, 0, fmt.Errorf("unknown indent style %q (want space or tab)", c.Style)
	}
	if width < 0 {
		return 0, 0, fmt.Errorf("indent width %d is negative", width)
	}
	return char, width, nil
}

// StringList accepts either a single string or a list of strings in
// YAML. A bare string becomes a single-element slice.
type StringList []string

// UnmarshalYAML implements [yaml.Unmarshaler] for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got YAML kind %d", node.Kind)
	}
}

// loadFileConfig loads path, or tries [DefaultConfigFile] when path is
// empty. A missing default file is not an error; a missing explicit path
// is. Decoding is strict so config typos fail loudly.
func loadFileConfig(path string) (*FileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// settings is the merged result of flags, file config, and defaults.
type settings struct {
	inputs      []string
	extensions  []string
	indentChar  byte
	indentWidth int
}

// resolveSettings merges flag values with the file config.
func resolveSettings(cfg Config, fileCfg *FileConfig) (settings, error) {
	s := settings{
		inputs:      cfg.Inputs,
		extensions:  descriptor.DefaultExtensions(),
		indentChar:  scriptbuilder.DefaultIndentChar,
		indentWidth: scriptbuilder.DefaultIndentWidth,
	}
	if fileCfg != nil {
		if len(s.inputs) == 0 {
			s.inputs = fileCfg.Inputs
		}
		if len(fileCfg.Extensions) > 0 {
			s.extensions = fileCfg.Extensions
		}
		char, width, err := fileCfg.Indent.Unit()
		if err != nil {
			return settings{}, err
		}
		s.indentChar, s.indentWidth = char, width
	}
	if len(s.inputs) == 0 {
		s.inputs = []string{"."}
	}
	return s, nil
}
