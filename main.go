package main

import (
	"fmt"
	"os"

	"github.com/vAhyThe/words/internal/cli"
	"github.com/vAhyThe/words/internal/config"
	"github.com/vAhyThe/words/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is implemented by every CLI subcommand.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "seed":
		cmd = cli.NewSeedCommand()
	case "append":
		cmd = cli.NewAppendCommand()
	case "list":
		cmd = cli.NewListCommand()
	case "add":
		cmd = cli.NewAddCommand()
	case "clear":
		cmd = cli.NewClearCommand()
	case "backup":
		cmd = cli.NewBackupCommand()
	case "version":
		fmt.Printf("%s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  seed      Generate the initial word list\n")
	fmt.Fprintf(os.Stderr, "  append    Append a batch of generated words\n")
	fmt.Fprintf(os.Stderr, "  list      Print the word list\n")
	fmt.Fprintf(os.Stderr, "  add       Add a word by hand\n")
	fmt.Fprintf(os.Stderr, "  clear     Delete the whole word list\n")
	fmt.Fprintf(os.Stderr, "  backup    Write the word list to a JSON backup file\n")
	fmt.Fprintf(os.Stderr, "  version   Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
