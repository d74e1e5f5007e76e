package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/pipeline"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/logging"
)

const version = "0.2.0"

// exitPanic distinguishes a crash from an ordinary failed command.
const exitPanic = 2

var rootCmd = &cobra.Command{
	Use:   "ecos",
	Short: "Build and flash ECOS RISC-V firmware",
	Long: `ecos drives the ECOS firmware workflow: scaffold a project,
configure it against the SDK, build it with cargo, and copy the
resulting image onto the flash target.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// newPipeline wires the shared command pipeline for one invocation.
func newPipeline() *pipeline.Pipeline {
	logger := logging.NewLogger("ecos", logging.GetLogLevel(), nil)
	p := pipeline.New(runner.NewExec(logger), logger)
	p.ToolVersion = version
	return p
}

// passthroughArgs returns the arguments after "--", rejecting stray
// positionals so typos do not silently reach the external builder.
func passthroughArgs(cmd *cobra.Command, args []string) ([]string, error) {
	at := cmd.ArgsLenAtDash()
	if at < 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("unexpected argument %q (pass cargo arguments after '--')", args[0])
		}
		return nil, nil
	}
	if at > 0 {
		return nil, fmt.Errorf("unexpected argument %q (pass cargo arguments after '--')", args[0])
	}
	return args[at:], nil
}

func printVersion() {
	fmt.Printf("ecos v%s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func main() {
	// Set up panic recovery to return a specific exit code
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(exitPanic)
		}
	}()

	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
