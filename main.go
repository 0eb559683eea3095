package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/expense-tracker/cmd/categorize"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/session"
	"fjacquet/expense-tracker/cmd/summarize"
	"fjacquet/expense-tracker/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// .env must be loaded before the log level is read from LOG_LEVEL.
	_, _ = config.LoadEnv()
	logrus.SetLevel(config.LogLevelFromEnv())

	root.Init()

	root.Cmd.AddCommand(session.Cmd)
	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
