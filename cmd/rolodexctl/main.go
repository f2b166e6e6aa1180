// rolodexctl is the command-line shell around the matcher: it loads
// contact exports into the shared database and matches attendee lists
// against it, mirroring what the HTTP service does for uploads.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okian/rolodex/internal/adapters/repository"
	app "github.com/okian/rolodex/internal/app"
	"github.com/okian/rolodex/internal/domain/model"
	"github.com/okian/rolodex/pkg/logger"
)

// CLI defaults, matching the service configuration defaults.
const (
	defaultDBPath    = "network.db"
	defaultThreshold = 85
	defaultOutput    = "matches.csv"
)

// ErrInputNotFound reports a missing input CSV before anything is touched.
var ErrInputNotFound = errors.New("input csv not found")

func main() {
	if len(os.Args) < 2 {
		showHelp()
		os.Exit(2)
	}

	if err := logger.Init("warn"); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "load-contacts":
		err = runLoadContacts(ctx, os.Args[2:])
	case "match-csv":
		err = runMatchCSV(ctx, os.Args[2:])
	case "help", "-h", "--help":
		showHelp()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		showHelp()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func showHelp() {
	os.Stdout.WriteString(`rolodexctl - contact directory + conference matcher

Usage:
  rolodexctl load-contacts -csv FILE -owner NAME [-source LABEL] [-db PATH]
  rolodexctl match-csv -csv FILE [-threshold N] [-output FILE] [-db PATH]

Commands:
  load-contacts   Load or refresh contacts from a CSV for one owner+source.
                  Re-loading the same owner+source replaces the old rows.
  match-csv       Match an attendee CSV against the directory and write the
                  result table as CSV. Attendee data is never stored.
`)
}

// openService opens the database and builds the service the commands run
// against.
func openService(ctx context.Context, dbPath string) (*app.Service, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbPath, err)
	}
	store, err := repository.NewGormStore(db)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	return app.New(store), nil
}

// openInput opens an input CSV, mapping a missing file onto
// ErrInputNotFound before any store mutation can happen.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}
	return f, nil
}

func runLoadContacts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("load-contacts", flag.ExitOnError)
	csvPath := fs.String("csv", "", "Path to the contacts CSV (required)")
	owner := fs.String("owner", "", "Owner of these contacts (required)")
	source := fs.String("source", "", `Source label (default "LinkedIn")`)
	dbPath := fs.String("db", defaultDBPath, "Path to the contact database")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return errors.New("-csv is required")
	}

	f, err := openInput(*csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	svc, err := openService(ctx, *dbPath)
	if err != nil {
		return err
	}

	src := *source
	if src == "" {
		src = svc.DefaultSource()
	}
	stats, err := svc.LoadContacts(ctx, f, *owner, src)
	if err != nil {
		return err
	}
	fmt.Printf("Refreshed contacts for owner=%q, source=%q. Deleted %d old rows, inserted %d new contacts from %s.\n",
		*owner, src, stats.Deleted, stats.Inserted, *csvPath)
	return nil
}

func runMatchCSV(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("match-csv", flag.ExitOnError)
	csvPath := fs.String("csv", "", "Path to the attendee CSV (required)")
	threshold := fs.Int("threshold", defaultThreshold, "Match score threshold (0-100)")
	output := fs.String("output", defaultOutput, "Output CSV file for matches")
	dbPath := fs.String("db", defaultDBPath, "Path to the contact database")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return errors.New("-csv is required")
	}

	f, err := openInput(*csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	svc, err := openService(ctx, *dbPath)
	if err != nil {
		return err
	}

	matches, err := svc.MatchAttendees(ctx, f, *threshold)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("No matches found above threshold.")
		return nil
	}

	if err := writeMatches(*output, matches); err != nil {
		return err
	}
	fmt.Printf("Found %d matches. Exported to %s.\n", len(matches), *output)
	return nil
}

// writeMatches writes the result table in the fixed column order.
func writeMatches(path string, matches []model.Match) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write(model.MatchColumns); err != nil {
		return err
	}
	for _, m := range matches {
		if err := w.Write(m.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
