// Package generator drives the lunycodegen pipeline: it locates
// descriptor files, prepares the script builder, and hands off to the
// descriptor translation stage. Translation does not exist yet, so Run
// always ends with [ErrNotImplemented]; callers and scripts see an honest
// failure until it does.
package generator

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/CodeSmile-0000011110110111/LunyCodeGen/descriptor"
	"github.com/CodeSmile-0000011110110111/LunyCodeGen/scriptbuilder"
)

// ErrNotImplemented reports a pipeline stage that is not built yet.
var ErrNotImplemented = errors.New("not yet implemented")

// Config holds all configuration for a generator run.
type Config struct {
	ConfigFile     string      // Path to lunycodegen.yml ("" tries the default)
	Inputs         []string    // Files and directories to scan; overrides the config file
	ValidationOnly bool        // Validate descriptors without generating code
	DryRun         bool        // Report planned output without writing files
	Logger         *log.Logger // Progress output; nil discards
}

// Run executes the generation pipeline as far as it exists.
func Run(cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	// 1. Load the optional file config and merge settings. Flags win
	// over the file; the file wins over defaults.
	fileCfg, err := loadFileConfig(cfg.ConfigFile)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cfg, fileCfg)
	if err != nil {
		return err
	}

	// 2. Discover descriptor files.
	files, err := descriptor.Discover(settings.inputs, descriptor.WithExtensions(settings.extensions...))
	if err != nil {
		return fmt.Errorf("discovering descriptors: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no descriptor files found under %s", strings.Join(settings.inputs, ", "))
	}
	for _, f := range files {
		logger.Printf("found %s (%d bytes)", f.Path, f.Size)
	}

	// 3. Prepare the script builder and the preamble every generated
	// script opens with.
	b := scriptbuilder.New(scriptbuilder.WithIndent(settings.indentChar, settings.indentWidth))
	writePreamble(b)
	if cfg.DryRun {
		logger.Printf("dry run: no files will be written")
	}
	logger.Printf("script preamble:\n%s", b.String())

	// 4. Translate descriptors.
	stage := "translating"
	if cfg.ValidationOnly {
		stage = "validating"
	}
	return fmt.Errorf("%s %d descriptor file(s): %w", stage, len(files), ErrNotImplemented)
}

// writePreamble emits the auto-generated header that every script file
// opens with.
func writePreamble(b *scriptbuilder.Builder) {
	b.AppendLine("// <auto-generated>")
	b.AppendLine("//     Generated by lunycodegen. Manual changes will be lost.")
	b.AppendLine("// </auto-generated>")
}
