// Command savevault-lang renders catalog messages from the command line.
//
// Usage:
//
//	savevault-lang render <id> [name=value ...]
//	savevault-lang size <bytes>
//	savevault-lang check
//	savevault-lang title
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/savevault/lang"
	"github.com/savevault/lang/internal/config"
	"github.com/savevault/lang/pkg/i18n"
	"github.com/savevault/lang/pkg/logger"
)

const (
	exitOK       = 0
	exitDegraded = 1
	exitUsage    = 2
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	log := cfg.Logger()
	defer logger.Flush(2 * time.Second)

	tr, err := lang.New(lang.WithLogger(log), lang.WithLocale(cfg.Locale))
	if err != nil {
		log.Error("failed to initialize translator", slog.String("error", err.Error()))
		return exitDegraded
	}

	return run(tr, os.Args[1:], os.Stdout, os.Stderr)
}

func run(tr *lang.Translator, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("savevault-lang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: savevault-lang render <id> [name=value ...] | size <bytes> | check | title")
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	switch cmd := fs.Arg(0); cmd {
	case "render":
		if fs.NArg() < 2 {
			fs.Usage()
			return exitUsage
		}
		return render(tr, fs.Arg(1), fs.Args()[2:], stdout, stderr)
	case "size":
		if fs.NArg() != 2 {
			fs.Usage()
			return exitUsage
		}
		n, err := strconv.ParseUint(fs.Arg(1), 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "invalid byte count %q\n", fs.Arg(1))
			return exitUsage
		}
		fmt.Fprintln(stdout, tr.AdjustedSize(n))
		return exitOK
	case "check":
		return check(tr, stdout)
	case "title":
		fmt.Fprintln(stdout, tr.WindowTitle())
		return exitOK
	default:
		fs.Usage()
		return exitUsage
	}
}

func render(tr *lang.Translator, id string, pairs []string, stdout, stderr io.Writer) int {
	args, err := parseArgs(pairs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	res := tr.Lookup(id, args)
	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "warning: %v\n", w)
	}
	fmt.Fprintln(stdout, res.String())

	if !res.OK() {
		return exitDegraded
	}
	return exitOK
}

// parseArgs turns "name=value" pairs into arguments. Values that parse as
// integers become numbers.
func parseArgs(pairs []string) (i18n.Args, error) {
	args := make(i18n.Args, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q: expected name=value", pair)
		}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			args[name] = i18n.Int(n)
		} else if u, err := strconv.ParseUint(value, 10, 64); err == nil {
			args[name] = i18n.Uint(u)
		} else {
			args[name] = i18n.Str(value)
		}
	}
	return args, nil
}

// check resolves every catalog key without arguments and lists degraded ones.
func check(tr *lang.Translator, stdout io.Writer) int {
	keys := tr.Keys()
	failed := 0
	for _, key := range keys {
		if res := tr.Lookup(key, nil); !res.OK() {
			fmt.Fprintf(stdout, "%s: %s\n", key, res.String())
			failed++
		}
	}

	fmt.Fprintf(stdout, "%d keys checked, %d degraded\n", len(keys), failed)
	if failed > 0 {
		return exitDegraded
	}
	return exitOK
}
