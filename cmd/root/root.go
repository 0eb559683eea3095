// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	Provider   string
}

var (
	// Flags holds the parsed persistent flags.
	Flags = GlobalFlags{}

	appConfig    *config.Config
	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A CLI tool to track daily expenses manually or from free text.",
		Long: `expense-tracker logs expenses entered manually (categories plus amounts)
or as free text ("Paid ₹600 for medicines"). Free-text entries get their amount
extracted and their category assigned by a text classifier. Totals, budget
status and a per-category breakdown are available at any time.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
)

// Init registers the persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default: $HOME/.expense-tracker/config.yaml)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level override (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&Flags.Provider, "provider", "", "Classifier provider override (gemini, huggingface, bayes, keyword, none)")
}

func setup(cmd *cobra.Command, _ []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.InitializeConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}

	if Flags.LogLevel != "" {
		if _, err := logrus.ParseLevel(Flags.LogLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %s", Flags.LogLevel)
		}
		cfg.Log.Level = Flags.LogLevel
	}
	if Flags.Provider != "" {
		cfg.AI.Provider = strings.ToLower(strings.TrimSpace(Flags.Provider))
	}

	c, err := container.NewContainer(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	appConfig = cfg
	appContainer = c
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if appContainer == nil {
		return nil
	}
	err := appContainer.Close()
	appContainer = nil
	return err
}

// GetContainer returns the container built for the running command, or nil
// before the root pre-run hook has executed.
func GetContainer() *container.Container {
	return appContainer
}

// GetConfig returns the loaded configuration, or nil before setup.
func GetConfig() *config.Config {
	return appConfig
}

// GetLogger returns the application logger, or a discarding logger before setup.
func GetLogger() logging.Logger {
	if appContainer == nil {
		return logging.Discard()
	}
	return appContainer.GetLogger()
}

// SetContainer installs c as the command container. Intended for tests.
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		appConfig = c.GetConfig()
	}
}
