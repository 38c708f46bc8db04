package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pexview/internal/config"
	"pexview/internal/eventbus"
	"pexview/internal/imaging"
	"pexview/internal/pexels"
	"pexview/internal/search"
	"pexview/internal/ui"
)

var (
	// Flags
	flagConfig  string
	flagLogFile string
)

// forwardedEvents are the bus events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventSearchCompleted,
	eventbus.EventSearchFailed,
	eventbus.EventImageLoaded,
	eventbus.EventImageFailed,
	eventbus.EventError,
}

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "pexview",
	Short: "Browse Pexels photos in the terminal",
	Long: `pexview searches Pexels for a topic and shows the results as a
full-screen photo pager with a strip of thumbnails below it.

The API key is read from the config file. On first start a template is
written and pexview exits so the key can be filled in.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (default: user config dir)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "pexview.log", "Path to the log file")

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	closeLog := setupLogging(flagLogFile)
	defer closeLog()

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()

	client := pexels.NewClient(pexels.Options{
		Endpoint:          cfg.Endpoint,
		APIKey:            cfg.APIKey,
		Orientation:       cfg.Orientation,
		Size:              cfg.Size,
		PerPage:           cfg.PerPage,
		LegacyQueryParams: cfg.LegacyQueryParams,
	})
	_ = search.NewSearchService(bus, client, cfg.RequestTimeout)                 // subscribes to search requests
	_ = imaging.NewImageService(bus, imaging.NewLoader(nil), cfg.RequestTimeout) // subscribes to image requests

	uiModel := ui.NewModel(bus, cfg)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	// Handlers run on their own goroutines, so the channel is never closed;
	// done stops both sides instead.
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})
	unsubscribe := make([]func(), 0, len(forwardedEvents))
	for _, t := range forwardedEvents {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			case <-done:
			}
		}))
	}
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	log.Printf("pexview %s starting (endpoint=%s, per_page=%d)", Version, cfg.Endpoint, cfg.PerPage)
	_, runErr := p.Run()

	// Cleanup
	for _, unsub := range unsubscribe {
		unsub()
	}
	close(done)
	bus.Close()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}

// setupLogging sends the standard logger to path. Without a usable file the
// log is discarded so nothing is written over the UI.
func setupLogging(path string) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}

// loadConfig reads the config file. A missing file is replaced by a template
// and reported as an error naming the file to edit.
func loadConfig(path string) (*config.Config, error) {
	svc := config.NewConfigService()
	if path != "" {
		svc = config.NewConfigServiceAt(path)
	}

	if _, err := os.Stat(svc.Path()); errors.Is(err, os.ErrNotExist) {
		if err := svc.SaveToPath(config.DefaultConfig(), svc.Path()); err != nil {
			return nil, err
		}
		log.Printf("Wrote config template to %s", svc.Path())
		return nil, fmt.Errorf("created %s: set api_key there and run pexview again", svc.Path())
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			return nil, fmt.Errorf("%w: edit %s", err, svc.Path())
		}
		return nil, err
	}
	return cfg, nil
}
