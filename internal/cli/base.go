// Package cli provides the shared command scaffold used by all gobokeh
// binaries: standard flag parsing, --version handling, and config loading.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gobokeh/gobokeh/internal/version"
	"github.com/spf13/pflag"
)

// Configurable represents a type that can be configured via flags and
// config files.
type Configurable interface {
	AddFlags(fs *pflag.FlagSet)
	LoadConfigWithFlagSet(fs *pflag.FlagSet) error
}

// CommandHandler represents a command that can be executed.
type CommandHandler interface {
	Start(config Configurable) error
}

// CommandArgs represents parsed command line arguments.
type CommandArgs struct {
	Command string
	Config  Configurable
}

// BaseCLI provides common CLI functionality.
type BaseCLI struct {
	stdout io.Writer
	stderr io.Writer
}

// NewBaseCLI creates a new BaseCLI instance.
func NewBaseCLI(stdout, stderr io.Writer) *BaseCLI {
	return &BaseCLI{stdout: stdout, stderr: stderr}
}

// ParseArgs parses args against the provided flag set, handling the
// standard --version flag and loading the command's configuration.
func (c *BaseCLI) ParseArgs(args []string, configFactory func() Configurable, fs *pflag.FlagSet) (*CommandArgs, error) {
	versionFlag := fs.Bool("version", false, "Show version and exit")

	cfg := configFactory()
	cfg.AddFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *versionFlag {
		return &CommandArgs{Command: "version", Config: cfg}, nil
	}

	if err := cfg.LoadConfigWithFlagSet(fs); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CommandArgs{Command: "start", Config: cfg}, nil
}

// Execute runs the parsed command.
func (c *BaseCLI) Execute(cmdArgs *CommandArgs, handler CommandHandler) error {
	switch cmdArgs.Command {
	case "version":
		version.ShowVersion(c.stdout)
		return nil
	case "start":
		return handler.Start(cmdArgs.Config)
	default:
		return fmt.Errorf("unknown command: %s", cmdArgs.Command)
	}
}

// StandardMain provides a complete main function implementation for simple
// commands.
func StandardMain(configFactory func() Configurable, handler CommandHandler) {
	cli := NewBaseCLI(os.Stdout, os.Stderr)

	cmdArgs, err := cli.ParseArgs(os.Args[1:], configFactory, pflag.CommandLine)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := cli.Execute(cmdArgs, handler); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
