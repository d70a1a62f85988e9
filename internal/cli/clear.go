package cli

import (
	"flag"
	"fmt"
	"os"
)

// ClearCommand deletes the word list and its positions.
type ClearCommand struct {
	storageFlags
	Yes bool
}

func NewClearCommand() *ClearCommand {
	return &ClearCommand{}
}

func (cmd *ClearCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)

	fs.BoolVar(&cmd.Yes, "yes", false, "Confirm deleting every word (required)")
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s clear -yes [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete the whole word list. The interface language preference is kept.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !cmd.Yes {
		return fmt.Errorf("refusing to clear without -yes")
	}
	return nil
}

func (cmd *ClearCommand) Run() error {
	app, err := cmd.openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	count := app.Manager.Count()
	app.Manager.ClearAll()

	fmt.Fprintf(cmd.out(), "Removed %d words\n", count)
	return nil
}
