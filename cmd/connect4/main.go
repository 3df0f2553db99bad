package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emittr/connect4/internal/analytics"
	"emittr/connect4/internal/config"
	"emittr/connect4/internal/console"
	"emittr/connect4/internal/game"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Printf("connect4: %v", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so buffered analytics are flushed before
// main exits, whatever the outcome.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("connect4", flag.ContinueOnError)
	rows := fs.Int("rows", cfg.Rows, "number of rows")
	cols := fs.Int("cols", cfg.Cols, "number of columns")
	seed := fs.Int64("seed", cfg.Seed, "seed for the computer's tie-breaks (0 = random)")
	color := fs.Bool("color", cfg.Color, "colorize tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var publisher analytics.Publisher = analytics.Discard{}
	if producer := analytics.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic); producer != nil {
		defer producer.Close()
		publisher = producer
		log.Printf("analytics enabled brokers=%v topic=%s", cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := console.NewRunner(console.New(stdin, stdout, *color), console.Config{
		Rows:          *rows,
		Cols:          *cols,
		Bot:           game.NewBot(rand.New(rand.NewSource(*seed))),
		Analytics:     publisher,
		ComputerDelay: cfg.ComputerDelay,
	})
	if err := runner.Run(ctx); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
