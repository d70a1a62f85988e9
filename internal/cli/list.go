package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/vAhyThe/words/internal/entities"
)

// ListCommand prints the word list in display order.
type ListCommand struct {
	storageFlags
	Query  string
	Offset int
	Limit  int
	JSON   bool
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	fs.StringVar(&cmd.Query, "q", "", "Only show words containing this text (case-insensitive)")
	fs.IntVar(&cmd.Offset, "offset", 0, "Skip this many words")
	fs.IntVar(&cmd.Limit, "limit", 0, "Show at most this many words (0 shows all)")
	fs.BoolVar(&cmd.JSON, "json", false, "Print the words as a JSON array")
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the word list in display order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Offset < 0 || cmd.Limit < 0 {
		return fmt.Errorf("-offset and -limit must not be negative")
	}
	return nil
}

func (cmd *ListCommand) Run() error {
	app, err := cmd.openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	var words []entities.WordEntry
	var total int
	if cmd.Query != "" {
		words = app.Manager.Search(cmd.Query)
		total = len(words)
	} else {
		words, total = app.Manager.Page(cmd.Offset, cmd.Limit)
	}

	out := cmd.out()
	if cmd.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(words)
	}

	for _, w := range words {
		fmt.Fprintf(out, "%5d  %-30s %-6s %s\n", w.Position, w.Text, w.Source, w.ID)
	}
	fmt.Fprintf(out, "%d of %d words\n", len(words), total)
	return nil
}
