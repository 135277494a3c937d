package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/lexicon"
)

type classifyOutput struct {
	Selection domain.ModelSelection `json:"selection"`
	Ranking   []domain.ScoredModel  `json:"ranking,omitempty"`
}

func newClassifyCmd(eng func() *engine) *cobra.Command {
	var (
		pillar  string
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "classify [TEXT...]",
		Short: "Select a coaching model for a message",
		Long: `Classify joins its arguments into one message and prints the selection as
JSON. With --explain the full score ranking is included.`,
		Example: `  coachctl classify "jag vill sluta snusa"
  coachctl classify --pillar talent --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			var c *domain.Context
			if pillar != "" {
				c = &domain.Context{PillarType: pillar}
			}

			out := classifyOutput{Selection: eng().classifier.Classify(text, c)}
			if explain {
				out.Ranking = eng().classifier.Rank(text, c)
			}
			return writeIndentedJSON(cmd, out)
		},
	}
	cmd.Flags().StringVar(&pillar, "pillar", "", "Development pillar ("+strings.Join(lexicon.Pillars(), ", ")+")")
	cmd.Flags().BoolVar(&explain, "explain", false, "Include the per-model score ranking")
	return cmd
}

func writeIndentedJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
