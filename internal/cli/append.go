package cli

import (
	"flag"
	"fmt"
	"os"
)

// AppendCommand adds one more batch of generated words.
type AppendCommand struct {
	storageFlags
	Count    int
	Language string
}

func NewAppendCommand() *AppendCommand {
	return &AppendCommand{}
}

func (cmd *AppendCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("append", flag.ExitOnError)

	fs.IntVar(&cmd.Count, "count", 0, "Number of words to add (default from DICTIONARY_BATCH_SIZE)")
	fs.StringVar(&cmd.Language, "lang", "", "Word list language: en, de or cs (default from DICTIONARY_LANGUAGE)")
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s append [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Append a batch of generated words after the last word.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Count < 0 {
		return fmt.Errorf("-count must be positive")
	}
	return nil
}

func (cmd *AppendCommand) Run() error {
	app, err := cmd.openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	count := cmd.Count
	if count == 0 {
		count = app.Config.Dictionary.BatchSize
	}

	added, err := app.Manager.AppendMore(count, languageOr(cmd.Language, app.Config))
	if err != nil {
		return fmt.Errorf("failed to append words: %w", err)
	}

	out := cmd.out()
	for _, w := range added {
		fmt.Fprintf(out, "%5d  %s\n", w.Position, w.Text)
	}
	fmt.Fprintf(out, "Added %d words, %d total\n", len(added), app.Manager.Count())
	return nil
}
