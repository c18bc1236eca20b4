package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Rakeshkoyya/skillverse/internal/cli"
	"github.com/Rakeshkoyya/skillverse/internal/config"
)

const exitInterrupted = 130

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.NewCLIConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	os.Exit(run(cfg))
}

func run(cfg *config.CLI) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg, nil, cli.HTTPAPI)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrAborted) {
			return exitInterrupted
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
