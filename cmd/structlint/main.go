package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	structlint "github.com/chrismerck/struct-lint"
	"github.com/chrismerck/struct-lint/config"
	"github.com/chrismerck/struct-lint/object"
	"github.com/chrismerck/struct-lint/report"
)

func main() {
	var (
		pattern     = flag.String("pattern", "", "Regex pattern for structs that should be packed (overrides config)")
		configPath  = flag.String("config", "", "Path to YAML config file")
		quiet       = flag.Bool("quiet", false, "Suppress summary line, only print issues")
		verbose     = flag.Bool("verbose", false, "Also print structs that passed checks")
		noPacked    = flag.Bool("no-packed-check", false, "Skip \"should be packed\" detection")
		noAlignment = flag.Bool("no-alignment-check", false, "Skip misaligned member detection")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: structlint [flags] <file|dir>...")
		fmt.Fprintln(os.Stderr, "       structlint -i <file|dir>...  (interactive mode)")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose && !*interactive {
		if logger, err := zap.NewDevelopment(); err == nil {
			structlint.SetLogger(logger)
			object.SetLogger(logger)
			defer logger.Sync()
		}
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts := structlint.Options{
		Pattern:        cfg.Pattern,
		Extensions:     cfg.Extensions,
		AlignmentCheck: cfg.Alignment() && !*noAlignment,
		PackedCheck:    cfg.Packed() && !*noPacked,
	}
	if *pattern != "" {
		opts.Pattern = *pattern
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
			os.Exit(2)
		}
		if err := runInteractive(paths, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		return
	}

	set, stats, err := structlint.Scan(paths, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if stats.Skipped > 0 && !*quiet {
		fmt.Fprintf(os.Stderr, "warning: skipped %d unreadable artifacts\n", stats.Skipped)
	}

	issues := report.Write(os.Stdout, set, report.Options{Quiet: *quiet, Verbose: *verbose})
	if issues > 0 {
		os.Exit(1)
	}
}
