package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/provider"
)

func newModelsCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the Gemini models usable with --model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := deps.apiKey()
			if key == "" {
				return ErrNoAPIKey
			}

			lister, err := deps.NewModelLister(cmd.Context(), key)
			if err != nil {
				return errors.Errorf("creating Gemini client: %w", err)
			}
			models, err := lister.ListModels(cmd.Context())
			if err != nil {
				if provider.IsRetryable(err) {
					return errors.Errorf("listing models (temporary failure, try again): %w", err)
				}
				return errors.Errorf("listing models: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tINPUT TOKENS\tOUTPUT TOKENS")
			for _, m := range models {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", m.Name, m.InputTokenLimit, m.OutputTokenLimit)
			}
			return tw.Flush()
		},
	}
}
