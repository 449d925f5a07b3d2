// Command ls-stargraph is a terminal Hertzsprung-Russell diagram.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-stargraph/internal/catalog"
	"github.com/litescript/ls-stargraph/internal/config"
	"github.com/litescript/ls-stargraph/internal/logging"
	"github.com/litescript/ls-stargraph/internal/plot"
	"github.com/litescript/ls-stargraph/internal/report"
	"github.com/litescript/ls-stargraph/internal/state"
	"github.com/litescript/ls-stargraph/internal/ui"
	"github.com/litescript/ls-stargraph/internal/version"
)

// Plot size used when stdout is not a terminal.
const (
	defaultCols = 80
	defaultRows = 30
)

// Events shown by -events.
const eventLogSize = 10

// options holds the parsed command line.
type options struct {
	logLevel    string
	logFile     string
	tableMode   bool
	plotMode    bool
	eventsMode  bool
	sample      bool
	spectral    bool
	magnitude   bool
	showVersion bool
	cols        int
	rows        int
	stars       starList
	axes        plot.Axes
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts, err := parseFlags(cfg, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("ls-stargraph v%s\n", version.Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads args on top of the environment configuration.
func parseFlags(cfg config.Config, args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("ls-stargraph", flag.ContinueOnError)
	fs.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	fs.BoolVar(&opts.tableMode, "table", false, "Print the star list instead of the TUI")
	fs.BoolVar(&opts.plotMode, "plot", false, "Print the diagram instead of the TUI")
	fs.BoolVar(&opts.eventsMode, "events", false, "Print the recent change log instead of the TUI")
	fs.BoolVar(&opts.sample, "sample", false, "Start with the built-in sample stars")
	fs.BoolVar(&opts.spectral, "spectral", false, "Read -star temperatures as spectral classes (e.g. G2)")
	fs.BoolVar(&opts.magnitude, "magnitude", false, "Read -star luminosities as absolute magnitudes")
	fs.BoolVar(&opts.showVersion, "version", false, "Print the version and exit")
	fs.IntVar(&opts.cols, "cols", 0, "Plot width in columns (default: terminal width)")
	fs.IntVar(&opts.rows, "rows", 0, "Plot height in rows (default: terminal height)")
	fs.Var(&opts.stars, "star", `Add a star as "Name,Temperature,Luminosity" (repeatable)`)

	fs.IntVar(&cfg.TempMin, "temp-min", cfg.TempMin, "Coolest temperature on the axis (K)")
	fs.IntVar(&cfg.TempMax, "temp-max", cfg.TempMax, "Hottest temperature on the axis (K)")
	fs.IntVar(&cfg.LumMin, "lum-min", cfg.LumMin, "Lowest luminosity exponent (negative)")
	fs.IntVar(&cfg.LumMax, "lum-max", cfg.LumMax, "Highest luminosity exponent (positive)")
	fs.IntVar(&cfg.HStep, "temp-step", cfg.HStep, "Kelvin between vertical grid lines")
	fs.IntVar(&cfg.VStep, "lum-step", cfg.VStep, "Luminosity ratio between horizontal grid lines")
	fs.IntVar(&cfg.LineOpacity, "grid-opacity", cfg.LineOpacity, "Grid brightness 0-100")
	fs.BoolVar(&cfg.ShowNames, "names", cfg.ShowNames, "Label stars with their names")
	fs.BoolVar(&cfg.ShowVLines, "vgrid", cfg.ShowVLines, "Draw vertical grid lines")
	fs.BoolVar(&cfg.ShowHLines, "hgrid", cfg.ShowHLines, "Draw horizontal grid lines")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	axes, err := cfg.Axes()
	if err != nil {
		return options{}, err
	}
	opts.axes = axes
	return opts, nil
}

func run(opts options) error {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	headless := opts.tableMode || opts.plotMode || opts.eventsMode || !isTTY

	logger := logging.New(logging.ParseLevel(opts.logLevel))
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else if !headless {
		// Stderr shares the alternate screen with the TUI.
		logger.SetOutput(io.Discard)
	}
	log := logger.With("main")

	entries, err := opts.stars.entries(opts.spectral, opts.magnitude)
	if err != nil {
		return err
	}
	if opts.sample {
		entries = append(catalog.DefaultEntries(), entries...)
	}

	stateMgr := state.NewManager(state.Config{Axes: opts.axes, MaxEvents: 100})
	stateMgr.AddAll(entries)
	log.Info("loaded %d stars", stateMgr.Len())
	if log.Enabled(logging.LevelDebug) {
		for _, e := range entries {
			log.Debug("%s: %d K, %g L, class %s", e.Star.Name, e.Star.TemperatureK, e.Star.Luminosity, e.Class)
		}
	}

	if headless {
		cols, rows := plotSize(opts, isTTY)
		return runHeadless(os.Stdout, stateMgr, opts, cols, rows)
	}

	p := tea.NewProgram(ui.New(stateMgr, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("TUI stopped: %v", err)
		return fmt.Errorf("running TUI: %w", err)
	}
	log.Info("exit with %d stars", stateMgr.Len())
	return nil
}

// plotSize picks the diagram size: flags first, then the terminal, then
// the fixed default.
func plotSize(opts options, isTTY bool) (int, int) {
	cols, rows := defaultCols, defaultRows
	if isTTY {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols, rows = w, h-1
		}
	}
	if opts.cols > 0 {
		cols = opts.cols
	}
	if opts.rows > 0 {
		rows = opts.rows
	}
	return cols, rows
}

// runHeadless prints the requested reports in the order plot, table,
// events. With none requested it prints the table.
func runHeadless(w io.Writer, stateMgr *state.Manager, opts options, cols, rows int) error {
	snap := stateMgr.Snapshot()
	table := opts.tableMode || (!opts.plotMode && !opts.eventsMode)

	var sections []func() error
	if opts.plotMode {
		sections = append(sections, func() error {
			return report.WriteDiagram(w, snap.Entries, snap.Axes, cols, rows)
		})
	}
	if table {
		sections = append(sections, func() error {
			report.WriteTable(w, snap.Entries)
			return nil
		})
	}
	if opts.eventsMode {
		sections = append(sections, func() error {
			report.WriteEvents(w, stateMgr.RecentEvents(eventLogSize), snap.UpdatedAt)
			return nil
		})
	}

	for i, write := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := write(); err != nil {
			return err
		}
	}
	return nil
}
