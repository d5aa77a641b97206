package main

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/error404/rfid-client/client"
	"github.com/error404/rfid-client/internal/config"
)

func newToggleCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle RFID [RFID...]",
		Short: "Toggle the status of one or more devices",
		Long: "Posts rfid=<RFID> to update_status.php for every argument. " +
			"Toggles are sent concurrently and independently; their order is not guaranteed.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(cfg)
			defer func() { _ = c.Close() }()

			pending := make([]*client.Pending, len(args))
			for i, rfid := range args {
				pending[i] = c.ToggleRFIDAsync(cmd.Context(), rfid)
				log.Debug().Str("rfid", rfid).Str("call_id", pending[i].ID()).Msg("toggle submitted")
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			failed := 0
			for i, p := range pending {
				resp, err := p.Wait(cmd.Context())
				if err != nil {
					failed++
					log.Error().Err(err).Str("rfid", args[i]).Str("call_id", p.ID()).Msg("toggle failed")
					fmt.Fprintf(errOut, "%s: %v\n", args[i], err)
					continue
				}
				fmt.Fprintf(out, "%s: %s %s\n", args[i], resp.Status, bytes.TrimSpace(resp.Body))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d toggles failed", failed, len(args))
			}
			return nil
		},
	}
}
