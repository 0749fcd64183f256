// Command ledger runs an interactive shared-expense ledger on stdin/stdout.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/mmynk/splitledger/internal/console"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/pkg/logging"
)

func main() {
	quiet := flag.Bool("quiet", false, "do not print a prompt (for piped input)")
	flag.Parse()

	_ = godotenv.Load()
	logging.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := console.New(ledger.NewDirectory(), os.Stdout)
	if !*quiet {
		c.WithPrompt("> ")
	}
	if err := c.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		slog.Error("Reading commands failed", "error", err)
		os.Exit(1)
	}
}
