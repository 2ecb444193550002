package generator

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDescriptor creates a minimal descriptor file in dir.
func writeDescriptor(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("name: Test\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunNotImplemented(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "game.luny.yml")

	var buf bytes.Buffer
	cfg := Config{
		Inputs: []string{dir},
		Logger: log.New(&buf, "", 0),
	}

	err := Run(cfg)
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Run() = %v, want ErrNotImplemented", err)
	}
	if !strings.Contains(err.Error(), "translating 1 descriptor file(s)") {
		t.Errorf("error = %q, want the translating stage named", err)
	}

	logged := buf.String()
	if !strings.Contains(logged, "game.luny.yml") {
		t.Errorf("log = %q, want the discovered file listed", logged)
	}
	if !strings.Contains(logged, "<auto-generated>") {
		t.Errorf("log = %q, want the script preamble", logged)
	}
}

func TestRunValidationOnly(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "game.luny.yml")

	err := Run(Config{Inputs: []string{dir}, ValidationOnly: true})
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Run() = %v, want ErrNotImplemented", err)
	}
	if !strings.Contains(err.Error(), "validating") {
		t.Errorf("error = %q, want the validating stage named", err)
	}
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "game.luny.yml")

	var buf bytes.Buffer
	err := Run(Config{Inputs: []string{dir}, DryRun: true, Logger: log.New(&buf, "", 0)})
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Run() = %v, want ErrNotImplemented", err)
	}
	if !strings.Contains(buf.String(), "dry run") {
		t.Errorf("log = %q, want a dry run notice", buf.String())
	}
}

func TestRunNoDescriptors(t *testing.T) {
	dir := t.TempDir()

	err := Run(Config{Inputs: []string{dir}})
	if err == nil {
		t.Fatal("expected an error for an empty input directory")
	}
	if errors.Is(err, ErrNotImplemented) {
		t.Errorf("err = %v, want a descriptor lookup failure, not ErrNotImplemented", err)
	}
	if !strings.Contains(err.Error(), "no descriptor files found") {
		t.Errorf("error = %q, want no-descriptors message", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	err := Run(Config{Inputs: []string{filepath.Join(t.TempDir(), "missing")}})
	if err == nil {
		t.Fatal("expected an error for a missing input path")
	}
	if !strings.Contains(err.Error(), "discovering descriptors") {
		t.Errorf("error = %q, want a discovery failure", err)
	}
}

func TestRunMissingExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "game.luny.yml")

	err := Run(Config{
		ConfigFile: filepath.Join(dir, "nope.yml"),
		Inputs:     []string{dir},
	})
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("error = %q, want a config read failure", err)
	}
}

func TestRunUsesFileConfig(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "game.script.yml")

	configYML := "inputs: " + dir + "\nextensions: [\".script.yml\"]\n"
	configFile := filepath.Join(dir, "lunycodegen.yml")
	if err := os.WriteFile(configFile, []byte(configYML), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := Run(Config{ConfigFile: configFile, Logger: log.New(&buf, "", 0)})
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Run() = %v, want ErrNotImplemented", err)
	}
	if !strings.Contains(buf.String(), "game.script.yml") {
		t.Errorf("log = %q, want the configured extension discovered", buf.String())
	}
}
