package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/helmy2/go-hijri-picker/internal/cli"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/logging"
	"github.com/helmy2/go-hijri-picker/internal/picker"
	"github.com/helmy2/go-hijri-picker/internal/tui"
	"golang.org/x/text/language"
)

func main() {
	os.Exit(runMain())
}

// runMain parses flags, runs the terminal picker and prints the confirmed
// date on stdout. Logs go to the cache directory only, the terminal belongs
// to the picker.
func runMain() int {
	opts := cli.Register(flag.CommandLine, false)
	flag.Parse()

	if opts.Version {
		logging.PrintVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	logCloser := logging.Setup(opts.Debug, config.TermLogFileName, nil)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.StartupInfo(config.CompTUI)

	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrTermFailed,
			config.LogKeyComponent, config.CompTUI,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

func run(ctx context.Context, opts *cli.Options) error {
	provider, err := opts.Provider()
	if err != nil {
		return err
	}
	stateOpts, err := opts.StateOptions()
	if err != nil {
		return err
	}
	formatter, err := format.New()
	if err != nil {
		return err
	}

	s, err := picker.NewState(provider, stateOpts...)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(tui.New(s, formatter), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrTermFailed, err)
	}

	// The result is meant for scripts, so it always uses ASCII digits.
	if d, ok := final.(tui.Model).Result(); ok {
		fmt.Println(formatter.FormatDate(d, config.PatternLogDate, language.English))
	}
	return nil
}
