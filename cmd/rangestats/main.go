package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	rangestatscmd "github.com/louisbranch/guessgame/internal/cmd/rangestats"
	"github.com/louisbranch/guessgame/internal/platform/config"
)

func main() {
	cfg, err := rangestatscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[RANGESTATS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rangestatscmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		config.Exitf("rangestats: %v", err)
	}
}
