package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/lexicon"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the coaching models in tie-break order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTRIGGERS")
			for _, m := range lexicon.AllModels() {
				def := lexicon.DefinitionOf(m)
				fmt.Fprintf(tw, "%s\t%s\t%d\n", m, def.DisplayName, len(def.Triggers))
			}
			return tw.Flush()
		},
	}
}

func newDirectiveCmd(eng func() *engine) *cobra.Command {
	return &cobra.Command{
		Use:   "directive MODEL",
		Short: "Print the compiled directive for a coaching model",
		Example: `  coachctl directive cbt
  coachctl directive strengths-based`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParseCoachingModel(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), eng().compiler.Compile(m).Text)
			return err
		},
	}
}
