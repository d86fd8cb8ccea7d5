package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/config"
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page personal portfolio with scroll-driven
animations, a rotating project showcase, a project detail modal and a
testimonial carousel. It can also export the page as a static build for
hosting under a subdirectory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initializeConfig(cmd *cobra.Command) error {
	cfg, used, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	// Command flags win over the file and the environment.
	if cmd.Flags().Changed("prod") {
		cfg.Prod, _ = cmd.Flags().GetBool("prod")
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
	}
	appConfig = cfg

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err = logging.New(level, !cfg.Prod)
	if err != nil {
		return err
	}
	if used != "" {
		logger.Info("Using config file", zap.String("path", used))
	}
	return nil
}

func loadContent() (*content.Content, error) {
	c, err := content.LoadFile(appConfig.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return c, nil
}
