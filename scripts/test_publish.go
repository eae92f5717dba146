//go:build ignore

// Публикует запрос на анализ в stream:difficulty:analyze и ждёт ответ воркера.
//
//	go run scripts/test_publish.go -lat 64.15 -lng -21.94
//	go run scripts/test_publish.go -pano Iu7JF_lQxq0kPaHaVupiJw
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/panoprobe/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	lat := flag.Float64("lat", 41.4027042, "latitude")
	lng := flag.Float64("lng", 2.1599563, "longitude")
	panoID := flag.String("pano", "", "Street View pano id (overrides lat/lng)")
	useVision := flag.Bool("vision", true, "ask for the vision model")
	wait := flag.Duration("wait", 60*time.Second, "how long to wait for the result")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.AnalysisRequestEvent{
		RequestID: uuid.New(),
		UseVision: useVision,
	}
	if *panoID != "" {
		event.PanoID = panoID
	} else {
		event.Latitude = lat
		event.Longitude = lng
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Запоминаем хвост done-стрима до публикации, чтобы не читать старые ответы
	lastID := "$"
	if last, err := client.XRevRangeN(ctx, domain.StreamDifficultyDone, "+", "-", 1).Result(); err == nil && len(last) > 0 {
		lastID = last[0].ID
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamDifficultyAnalyze,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: %s\n", domain.StreamDifficultyAnalyze)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	if event.HasPanoID() {
		fmt.Printf("   Pano ID: %s\n", *event.PanoID)
	} else {
		fmt.Printf("   Coordinates: %.6f, %.6f\n", *event.Latitude, *event.Longitude)
	}

	fmt.Printf("\n⏳ Waiting for response in %s...\n", domain.StreamDifficultyDone)

	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamDifficultyDone, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Fatalf("Failed to read results: %v", err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var done domain.AnalysisDoneEvent
				if err := json.Unmarshal([]byte(raw), &done); err != nil || done.RequestID != event.RequestID {
					continue
				}

				if done.Error != "" {
					fmt.Printf("\n❌ Analysis failed: %s\n", done.Error)
					return
				}

				fmt.Printf("\n✅ Response received!\n")
				pretty, _ := json.MarshalIndent(done, "", "  ")
				fmt.Printf("%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("❌ Timeout waiting for response")
}
