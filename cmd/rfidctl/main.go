package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/error404/rfid-client/client"
	"github.com/error404/rfid-client/internal/config"
	"github.com/error404/rfid-client/internal/logger"
)

func main() {
	log.Logger = logger.New("rfidctl", logger.Console())

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	if err := NewRootCmd(cfg).Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
// Flags default to the values already in cfg and write back into it.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	var logFile io.Closer

	rootCmd := &cobra.Command{
		Use:          "rfidctl",
		Short:        "Read RFID data and toggle device status through the RFID API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			var w io.Writer
			w, logFile = logger.Writer(logger.Console(), logger.FileOptions{
				Path:       cfg.LogFile,
				MaxSizeMB:  cfg.LogMaxSizeMB,
				MaxBackups: cfg.LogMaxBackups,
			})
			log.Logger = logger.New("rfidctl", w)

			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Str("base_url", cfg.BaseURL).Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL of the RFID API")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request timeout (0 disables)")
	flags.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "Log every HTTP request and response")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Also write JSON logs to this rotating file")

	rootCmd.AddCommand(newFetchCmd(cfg))
	rootCmd.AddCommand(newToggleCmd(cfg))

	return rootCmd
}

func newClient(cfg *config.Config) *client.Client {
	opts := []client.Option{client.WithDebugLogging(cfg.Debug)}
	if cfg.Timeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(cfg.Timeout))
	}
	return client.New(cfg.BaseURL, opts...)
}
