package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pillarcoach/coachengine/internal/config"
	"github.com/pillarcoach/coachengine/internal/content"
	"github.com/pillarcoach/coachengine/internal/service"
)

// engine bundles the services a command runs against. Commands run the
// engine in-process; nothing talks to the HTTP server.
type engine struct {
	classifier *service.ClassifierService
	compiler   *service.DirectiveCompiler
	composer   *service.PromptComposer
}

func newEngine(logger *zap.Logger) *engine {
	classifier := service.NewClassifierService(nil, logger)
	compiler := service.NewDirectiveCompiler()
	return &engine{
		classifier: classifier,
		compiler:   compiler,
		composer:   service.NewPromptComposer(classifier, compiler, content.Default(), nil, logger),
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
		eng     *engine
	)

	root := &cobra.Command{
		Use:   "coachctl",
		Short: "Inspect coaching model selection and prompt composition",
		Long: `coachctl runs the coaching engine locally: list the coaching models,
classify a message, print a model directive, or compose the conversation and
actionable prompts exactly as the server would.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			logger = zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			eng = newEngine(logger)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// Sync on a terminal stderr fails with EINVAL on some platforms.
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine decisions to stderr")

	get := func() *engine { return eng }
	root.AddCommand(
		newModelsCmd(),
		newClassifyCmd(get),
		newDirectiveCmd(get),
		newPromptCmd(get),
		newVersionCmd(),
	)
	return root
}
