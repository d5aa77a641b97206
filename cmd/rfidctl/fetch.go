package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/error404/rfid-client/internal/config"
)

func newFetchCmd(cfg *config.Config) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the data set served by get_data.php",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(cfg)
			defer func() { _ = c.Close() }()

			start := time.Now()
			resp, err := c.FetchData(cmd.Context())
			elapsed := time.Since(start)
			if err != nil {
				log.Error().Err(err).Str("base_url", cfg.BaseURL).Dur("elapsed", elapsed).Msg("fetch data failed")
				return err
			}

			log.Debug().
				Int("status_code", resp.StatusCode).
				Int("bytes", len(resp.Body)).
				Dur("elapsed", elapsed).
				Msg("fetch data completed")

			body := resp.Body
			if pretty {
				var buf bytes.Buffer
				if err := json.Indent(&buf, body, "", "  "); err == nil {
					body = buf.Bytes()
				}
			}

			out := cmd.OutOrStdout()
			if _, err := out.Write(body); err != nil {
				return err
			}
			if !bytes.HasSuffix(body, []byte("\n")) {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the body when it is JSON")
	return cmd
}
