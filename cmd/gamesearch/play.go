package main

import (
	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/protocol"
)

func newPlayCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run the text protocol on stdin and stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg, logger, err = flags.setup(cmd)
			if err != nil {
				return err
			}
			rules, err := cfg.Rules()
			if err != nil {
				return err
			}
			weights, err := cfg.WeightsFor(rules)
			if err != nil {
				return err
			}
			var eng = engine.NewEngine(cfg.Search, logger)
			var p = protocol.New(eng, rules, cmd.OutOrStdout(), logger)
			p.SetWeights(weights)
			return p.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}
