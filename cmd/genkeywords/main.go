// Command genkeywords generates the scriptbuilder keyword tables from a
// declarative keyword list.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/CodeSmile-0000011110110111/LunyCodeGen/internal/keywordgen"
)

func main() {
	cfg := keywordgen.Config{}

	flag.StringVar(&cfg.KeywordsFile, "keywords", "", "Path to keywords.yml configuration file (required)")
	flag.StringVar(&cfg.OutputDir, "output", "scriptbuilder", "Output directory for the generated file")
	flag.StringVar(&cfg.PackageName, "package", "scriptbuilder", "Go package name for the generated file")
	flag.Parse()

	if cfg.KeywordsFile == "" {
		fmt.Fprintln(os.Stderr, "error: -keywords flag is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := keywordgen.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
