package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// AddCommand appends a manually entered word.
type AddCommand struct {
	storageFlags
	Text string
}

func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add [options] <word>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Append a word to the end of the list.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Text = strings.Join(fs.Args(), " ")
	if strings.TrimSpace(cmd.Text) == "" {
		return fmt.Errorf("word text not provided")
	}
	return nil
}

func (cmd *AddCommand) Run() error {
	app, err := cmd.openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	entry, err := app.Manager.AddWord(cmd.Text)
	if err != nil {
		return fmt.Errorf("failed to add word: %w", err)
	}

	fmt.Fprintf(cmd.out(), "Added %q at position %d (id %s)\n", entry.Text, entry.Position, entry.ID)
	return nil
}
