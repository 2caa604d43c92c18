package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/helmy2/go-hijri-picker/internal/cli"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/logging"
	"github.com/helmy2/go-hijri-picker/internal/server"
	"github.com/helmy2/go-hijri-picker/internal/ui"
)

// main delegates to runMain so deferred calls (closing the log file) run
// before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	opts := cli.Register(flag.CommandLine, true)
	flag.Parse()

	if opts.Version {
		logging.PrintVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := logging.Setup(opts.Debug, config.LogFileName, os.Stdout)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.StartupInfo(config.CompMain)

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires dependencies and blocks in the Fyne event loop.
func run(ctx context.Context, opts *cli.Options) error {
	provider, err := opts.Provider()
	if err != nil {
		return err
	}
	yearRange, err := opts.YearRange()
	if err != nil {
		return err
	}
	formatter, err := format.New()
	if err != nil {
		return err
	}

	var srv *server.CalendarServer
	if opts.Serve {
		if err := server.ValidatePort(opts.Port); err != nil {
			return err
		}
		srv = server.NewCalendarServer(opts.Port, provider, formatter)
	}

	a := app.NewWithID(config.AppID)

	gui := ui.NewPickerApp(a, ctx, provider, formatter, srv)
	gui.Locale = opts.Tag()
	gui.YearRange = yearRange

	// Quit the UI when the context is cancelled by a signal.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	return nil
}
