package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hz19-events/internal/drift"
	"github.com/pfrederiksen/hz19-events/internal/query"
	"github.com/pfrederiksen/hz19-events/internal/region"
	"github.com/pfrederiksen/hz19-events/internal/scraper"
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool

	flagSearch     string
	flagPage       int
	flagPageSize   int
	flagMaxResults int
)

// NewRootCmd creates the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hz19-events",
		Short: "Query electronic music event listings from 19hz.info",
		Long: `Query electronic music event listings from 19hz.info.
Fetches live listing pages per region, extracts normalized event records,
and supports text search within a region or across all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or markdown")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	root.AddCommand(newEventsCmd())
	root.AddCommand(newRegionsCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newCheckRegionsCmd())

	return root
}

// app holds the wired-up collaborators every subcommand needs.
type app struct {
	registry *region.Registry
	service  *query.Service
	detector *drift.Detector
	logger   zerolog.Logger
}

// newApp loads config and wires the registry, fetcher, extractor, query
// service, and drift detector together. Retries are added here, outside the
// core fetcher, and only when configured.
func newApp() (*app, error) {
	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(flagVerbose)

	var fetcher scraper.Fetcher = scraper.NewClient(cfg.Timeout(), cfg.UserAgent)
	if cfg.MaxRetries > 0 {
		fetcher = scraper.NewRetryingFetcher(fetcher, cfg.MaxRetries)
	}

	registry := region.Default()
	return &app{
		registry: registry,
		service:  query.New(registry, fetcher, scraper.NewListingExtractor(cfg.BaseURL), cfg.BaseURL, logger),
		detector: drift.New(registry, fetcher, cfg.BaseURL),
		logger:   logger,
	}, nil
}

func newLogger(verbose bool) zerolog.Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if verbose {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.WarnLevel)
}

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events <region>",
		Short: "Fetch event listings for one region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}

			r, err := a.registry.Resolve(args[0])
			if err != nil {
				return err
			}

			events, err := a.service.GetEvents(cmd.Context(), r.Key, flagSearch)
			if err != nil {
				return err
			}

			page := query.Paginate(events, flagPage, flagPageSize)
			return WriteEvents(cmd.OutOrStdout(), format, r, flagSearch, page)
		},
	}
	cmd.Flags().StringVar(&flagSearch, "search", "", "Filter events containing this text (case-insensitive)")
	cmd.Flags().IntVar(&flagPage, "page", 1, "Page number")
	cmd.Flags().IntVar(&flagPageSize, "page-size", query.DefaultPageSize, "Events per page")
	return cmd
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List all available regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			return WriteRegions(cmd.OutOrStdout(), format, a.service.ListRegions())
		},
	}
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search for events across all regions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			result := a.service.SearchAllRegions(cmd.Context(), args[0], flagMaxResults)
			return WriteSearch(cmd.OutOrStdout(), format, args[0], result)
		},
	}
	cmd.Flags().IntVar(&flagMaxResults, "max-results", query.DefaultMaxResults, "Maximum number of matches across all regions")
	return cmd
}

func newCheckRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-regions",
		Short: "Diff the live site's region list against the built-in registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			result, err := a.detector.Check(cmd.Context())
			if err != nil {
				return err
			}
			return WriteDrift(cmd.OutOrStdout(), format, a.registry.Len(), result)
		},
	}
}
