package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/jacoelho/xmlbind"
	binderrors "github.com/jacoelho/xmlbind/errors"
	"github.com/jacoelho/xmlbind/internal/vmaster"
	"github.com/jacoelho/xmlbind/pkg/xmltree"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmlbind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log unmapped nodes and malformed values to stderr")
	cpuProfilePath := fs.String("cpuprofile", "", "write CPU profile to file")
	memProfilePath := fs.String("memprofile", "", "write memory profile to file")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <document>\n\n", os.Args[0]),
			writeln(stderr, "Binds a vMaster trade message (XML or YAML, optionally .gz, .zz or .zst compressed)"),
			writeln(stderr, "and prints the bound header fields."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one document argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	docPath := remaining[0]

	if *cpuProfilePath != "" {
		stopCPUProfile, err := startCPUProfile(*cpuProfilePath)
		if err != nil {
			if writeErr := writef(stderr, "error starting CPU profile: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				_ = writef(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}

	if *memProfilePath != "" {
		defer func() {
			if err := writeMemProfile(*memProfilePath); err != nil {
				_ = writef(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	root, err := xmltree.ParseFile(docPath)
	if err != nil {
		if writeErr := writeChain(stderr, "error reading document", err); writeErr != nil {
			return 1
		}
		return 1
	}

	var stats xmlbind.Stats
	msg := vmaster.NewMessage()
	start := time.Now()
	bindErr := xmlbind.Bind(root, msg, xmlbind.WithLogger(logger), xmlbind.WithStats(&stats))
	elapsed := time.Since(start)

	if err := printMessage(stdout, msg, stats, elapsed); err != nil {
		return 1
	}
	if bindErr != nil {
		if writeErr := writeChain(stderr, "error binding document", bindErr); writeErr != nil {
			return 1
		}
		if writeErr := writef(stderr, "%s fails to bind\n", docPath); writeErr != nil {
			return 1
		}
		return 1
	}
	return 0
}

func printMessage(w io.Writer, msg *vmaster.Message, stats xmlbind.Stats, elapsed time.Duration) error {
	h := msg.Header
	lines := []struct {
		format string
		args   []any
	}{
		{"instrument: %s\n", []any{h.Instrument.Value()}},
		{"entity coper id: %d\n", []any{h.EntityCoperID.Value()}},
		{"trade origin id: %s\n", []any{h.TradeOriginID.Value()}},
		{"has trader: %t\n", []any{h.Trader.Present()}},
		{"desk: %s\n", []any{h.Desk.Value()}},
		{"diary entries: %d\n", []any{h.Diary.Entries.Len()}},
	}
	for _, l := range lines {
		if err := writef(w, l.format, l.args...); err != nil {
			return err
		}
	}
	for i, e := range h.Diary.Entries.All() {
		if err := writef(w, "  [%d] %s\n", i, e.DiaryText.Value()); err != nil {
			return err
		}
	}
	if err := writef(w, "bound %d fields, %d unmapped, %d malformed\n", stats.Bound, stats.Unmapped, stats.Failed); err != nil {
		return err
	}
	return writef(w, "time in microseconds: %d\n", elapsed.Microseconds())
}

// writeChain prints err as a rendered error chain when it is one.
func writeChain(w io.Writer, prefix string, err error) error {
	if chain, ok := binderrors.AsChain(err); ok {
		if writeErr := writef(w, "%s:\n", prefix); writeErr != nil {
			return writeErr
		}
		return chain.Render(w)
	}
	return writef(w, "%s: %v\n", prefix, err)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
