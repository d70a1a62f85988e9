package cli

import (
	"flag"
	"fmt"
	"os"
)

// SeedCommand generates the initial word list.
type SeedCommand struct {
	storageFlags
	Count    int
	Language string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.IntVar(&cmd.Count, "count", 0, "Number of words to generate (default from DICTIONARY_TARGET_COUNT)")
	fs.StringVar(&cmd.Language, "lang", "", "Word list language: en, de or cs (default from DICTIONARY_LANGUAGE)")
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate the initial word list. An existing list is left untouched.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed -count 100 -lang de\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Count < 0 {
		return fmt.Errorf("-count must be positive")
	}
	return nil
}

func (cmd *SeedCommand) Run() error {
	app, err := cmd.openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	count := cmd.Count
	if count == 0 {
		count = app.Config.Dictionary.TargetCount
	}
	language := languageOr(cmd.Language, app.Config)

	words, generated, err := app.Manager.Seed(count, language)
	if err != nil {
		return fmt.Errorf("failed to seed word list: %w", err)
	}

	out := cmd.out()
	if !generated {
		fmt.Fprintf(out, "Word list already exists with %d words, nothing generated\n", len(words))
		return nil
	}
	fmt.Fprintf(out, "Generated %d %s words\n", len(words), language)
	return nil
}
