// goseal encrypts and decrypts files with a password.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/idelchi/goseal/internal/commands"
	"github.com/idelchi/goseal/internal/config"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
