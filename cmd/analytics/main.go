package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emittr/connect4/internal/analytics"
	"emittr/connect4/internal/config"

	"github.com/segmentio/kafka-go"
)

func main() {
	cfg := config.Load()
	brokers := cfg.KafkaBrokers
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroup,
	})
	defer reader.Close()

	log.Printf("analytics consumer listening on %v topic=%s group=%s", brokers, cfg.KafkaTopic, cfg.KafkaGroup)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := cfg.SummaryInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	summary := analytics.NewSummary()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				summary.Print()
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				summary.Print()
				return
			}
			log.Fatalf("read error: %v", err)
		}
		e, err := analytics.Decode(msg.Value)
		if err != nil {
			log.Printf("failed to unmarshal event: %v", err)
			continue
		}
		summary.Record(e)
		log.Printf("event=%s gameId=%v winner=%v", e.Event, e.Payload["gameId"], e.Payload["winner"])
	}
}
