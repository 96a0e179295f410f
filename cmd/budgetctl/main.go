package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"budget-coach/internal/commands"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCommand(commands.DefaultRuntime()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
