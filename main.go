package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sona/internal/app"
	"github.com/llehouerou/sona/internal/config"
	"github.com/llehouerou/sona/internal/errmsg"
	"github.com/llehouerou/sona/internal/logx"
	"github.com/llehouerou/sona/internal/notify"
	"github.com/llehouerou/sona/internal/stderr"
	"github.com/llehouerou/sona/internal/toast"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	var opts []app.Option

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
		opts = append(opts, app.WithStartupToast(toast.KindError, errmsg.Format(errmsg.OpConfigLoad, err)))
	}

	log, logFile, err := logx.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log = logx.Nop()
		opts = append(opts, app.WithStartupToast(toast.KindWarning, errmsg.Format(errmsg.OpLogOpen, err)))
	} else {
		defer closeQuietly(logFile)
	}
	opts = append(opts, app.WithLogger(log.With(logx.String("component", "app"))))

	tc := cfg.GetToastConfig()
	if tc.Desktop {
		n, nerr := notify.New()
		if nerr == nil {
			defer func() { _ = n.Shutdown() }()
			opts = append(opts, app.WithNotifier(n))
		}
	}

	store := toast.NewStore(
		toast.WithInterval(tc.Interval()),
		toast.WithLogger(log),
	)
	defer store.Unmount()

	// Capture stderr before bubbletea takes the terminal.
	if err := stderr.Start(); err != nil {
		opts = append(opts, app.WithStartupToast(toast.KindWarning, errmsg.Format(errmsg.OpStderrCapture, err)))
	}
	defer stderr.Stop()

	p := tea.NewProgram(app.New(cfg, store, opts...), tea.WithAltScreen())

	// Triggers fail with ErrNotMounted until the model's Init mounts the store.
	if err := toast.Init(store, p); err != nil {
		return err
	}
	defer toast.Teardown()

	go stderr.Forward(stderr.Messages, toast.Default())

	log.Info("started",
		logx.Int("interval_ms", tc.IntervalMS),
		logx.String("corner", tc.Corner),
		logx.Bool("desktop", tc.Desktop))
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info("stopped")
	return nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
