package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vAhyThe/words/internal/scheduler"
)

// BackupCommand writes the word list to a JSON backup file once.
type BackupCommand struct {
	storageFlags
	Dir  string
	Keep int
}

func NewBackupCommand() *BackupCommand {
	return &BackupCommand{}
}

func (cmd *BackupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)

	fs.StringVar(&cmd.Dir, "dir", "", "Backup directory (default from BACKUP_DIR)")
	fs.IntVar(&cmd.Keep, "keep", -1, "Newest backups to keep, 0 keeps all (default from BACKUP_KEEP)")
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s backup [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write the word list to a timestamped JSON file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *BackupCommand) Run() error {
	app, err := cmd.openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	dir := cmd.Dir
	if dir == "" {
		dir = app.Config.Backup.Dir
	}
	keep := cmd.Keep
	if keep < 0 {
		keep = app.Config.Backup.Keep
	}

	words := app.Manager.Words()
	path, err := scheduler.WriteBackup(dir, words, time.Now())
	if err != nil {
		return err
	}

	out := cmd.out()
	fmt.Fprintf(out, "Wrote %d words to %s\n", len(words), path)

	if keep > 0 {
		removed, err := scheduler.PruneBackups(dir, keep)
		if err != nil {
			return err
		}
		if removed > 0 {
			fmt.Fprintf(out, "Removed %d old backups\n", removed)
		}
	}
	return nil
}
