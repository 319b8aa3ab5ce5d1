package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	guesscmd "github.com/louisbranch/guessgame/internal/cmd/guess"
	"github.com/louisbranch/guessgame/internal/platform/config"
)

func main() {
	cfg, err := guesscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[GUESS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := guesscmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("guess: %v", err)
	}
}
