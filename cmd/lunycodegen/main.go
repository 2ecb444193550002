// Command lunycodegen generates C# binding scripts for the Luny runtime
// from Luny API descriptor files.
//
// The descriptor translation stage is not built yet. The command already
// parses its flags, loads the optional lunycodegen.yml config, and
// discovers descriptor files, then reports the translation stage as not
// implemented. Exit codes: 0 for usage and -version, 1 for any failure
// (including the unimplemented stage), 2 for bad flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/CodeSmile-0000011110110111/LunyCodeGen/internal/generator"
)

const version = "0.1.0"

// inputList collects repeated -input flags.
type inputList []string

func (l *inputList) String() string {
	return strings.Join(*l, ",")
}

func (l *inputList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	var inputs inputList
	flag.Var(&inputs, "input", "Descriptor file or directory to scan (repeatable)")
	configFile := flag.String("config", "", "Path to lunycodegen.yml (default tries ./lunycodegen.yml)")
	validationOnly := flag.Bool("validation-only", false, "Validate descriptors without generating code")
	dryRun := flag.Bool("dry-run", false, "Report planned output without writing files")
	verbose := flag.Bool("verbose", false, "Enable progress output")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("lunycodegen %s\n", version)
		return
	}

	fmt.Printf("lunycodegen %s - C# binding script generator for Luny\n", version)

	logger := log.New(io.Discard, "", 0)
	if *verbose || *dryRun {
		logger = log.New(os.Stderr, "", 0)
	}

	cfg := generator.Config{
		ConfigFile:     *configFile,
		Inputs:         inputs,
		ValidationOnly: *validationOnly,
		DryRun:         *dryRun,
		Logger:         logger,
	}
	if err := generator.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`lunycodegen - C# binding script generator for Luny

Usage:
  lunycodegen [options]

Options:
  -input path         Descriptor file or directory to scan (repeatable; default ".")
  -config path        Path to lunycodegen.yml (default tries ./lunycodegen.yml)
  -validation-only    Validate descriptors without generating code
  -dry-run            Report planned output without writing files
  -verbose            Enable progress output
  -version            Print version and exit

Examples:
  lunycodegen -input Descriptors -dry-run
  lunycodegen -input game.luny.yml -input audio.luny.yml -verbose
`)
}
