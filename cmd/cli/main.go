package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/waterbill/internal/client/cli"
	"github.com/dmitrijs2005/waterbill/internal/client/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := cli.Execute(ctx, cli.NewApp(cfg)); err != nil {
		stop()
		os.Exit(1)
	}

}
