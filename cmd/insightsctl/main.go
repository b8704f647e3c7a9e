// Command insightsctl prints the dashboard reports as terminal tables (or
// JSON) straight from the store, without going through the HTTP API.
//
//	insightsctl overview
//	insightsctl ranking --by affinity --character Aria --limit 10
//	insightsctl user 7f3c... -o json
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
