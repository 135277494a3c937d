package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pillarcoach/coachengine/internal/config"
	"github.com/pillarcoach/coachengine/internal/domain"
)

// contextFlags are shared by both prompt subcommands.
type contextFlags struct {
	pillar     string
	challenges []string
	goals      []string
	history    []string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pillar, "pillar", "", "Development pillar")
	cmd.Flags().StringArrayVar(&f.challenges, "challenge", nil, "Current challenge (repeatable)")
	cmd.Flags().StringArrayVar(&f.goals, "goal", nil, "User goal (repeatable)")
	cmd.Flags().StringArrayVar(&f.history, "history", nil, "Earlier conversation summary, oldest first (repeatable)")
}

func (f *contextFlags) context() domain.Context {
	return domain.Context{
		PillarType:        f.pillar,
		CurrentChallenges: f.challenges,
		UserGoals:         f.goals,
		UserHistory:       f.history,
	}
}

func newPromptCmd(eng func() *engine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Compose generation prompts",
	}
	cmd.AddCommand(
		newConversationCmd(eng),
		newActionablesCmd(eng),
	)
	return cmd
}

func newConversationCmd(eng func() *engine) *cobra.Command {
	var (
		ctxFlags  contextFlags
		empathy   string
		intensity string
	)

	cmd := &cobra.Command{
		Use:     "conversation [MESSAGE...]",
		Short:   "Print the system instruction for a coaching conversation",
		Example: `  coachctl prompt conversation --pillar self_care --empathy high "jag sover dåligt av stress"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := domain.ConversationConfig{
				Message:      strings.Join(args, " "),
				EmpathyLevel: domain.EmpathyLevel(empathy),
				Intensity:    domain.Intensity(intensity),
			}
			if empathy == "" {
				cfg.EmpathyLevel = config.DefaultEmpathyLevel()
			} else if !cfg.EmpathyLevel.IsValid() {
				return fmt.Errorf("invalid --empathy %q: want high, medium or low", empathy)
			}
			if intensity == "" {
				cfg.Intensity = config.DefaultIntensity()
			} else if !cfg.Intensity.IsValid() {
				return fmt.Errorf("invalid --intensity %q: want gentle, moderate or challenging", intensity)
			}

			text := eng().composer.BuildConversationalInstruction(ctxFlags.context(), cfg)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	ctxFlags.register(cmd)
	cmd.Flags().StringVar(&empathy, "empathy", "", "Empathy level: high, medium or low (default from DEFAULT_EMPATHY_LEVEL)")
	cmd.Flags().StringVar(&intensity, "intensity", "", "Intensity: gentle, moderate or challenging (default from DEFAULT_INTENSITY)")
	return cmd
}

func newActionablesCmd(eng func() *engine) *cobra.Command {
	var (
		ctxFlags       contextFlags
		tasks          int
		assessmentFile string
		startDate      string
		timeframeDays  int
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "actionables",
		Short: "Print the system and user texts for actionable generation",
		Example: `  coachctl prompt actionables --tasks 6 --pillar economy --goal "spara till buffert"
  coachctl prompt actionables --assessment result.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var assessment any
			if assessmentFile != "" {
				data, err := os.ReadFile(assessmentFile)
				if err != nil {
					return fmt.Errorf("failed to read assessment: %w", err)
				}
				if err := json.Unmarshal(data, &assessment); err != nil {
					return fmt.Errorf("failed to parse assessment %s: %w", assessmentFile, err)
				}
			}

			prefs := domain.Preferences{
				StartDate:     startDate,
				TimeframeDays: timeframeDays,
			}
			if cmd.Flags().Changed("tasks") {
				prefs.TotalTasks = &tasks
			}

			pair, err := eng().composer.BuildActionableInstructionPair(assessment, prefs, ctxFlags.context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeIndentedJSON(cmd, pair)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== SYSTEM ===\n%s\n\n=== USER ===\n%s\n", pair.SystemText, pair.UserText)
			return nil
		},
	}
	ctxFlags.register(cmd)
	cmd.Flags().IntVar(&tasks, "tasks", 0, "Requested number of actionables (clamped to 3..8, default 5)")
	cmd.Flags().StringVar(&assessmentFile, "assessment", "", "Path to a JSON file with assessment data")
	cmd.Flags().StringVar(&startDate, "start-date", "", "First eventDate, YYYY-MM-DD")
	cmd.Flags().IntVar(&timeframeDays, "timeframe-days", 0, "Days to spread the actionables over")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the instruction pair as JSON")
	return cmd
}
