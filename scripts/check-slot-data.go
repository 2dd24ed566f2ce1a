package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/aus-world/internal/entities/aus"
	"github.com/KirkDiggler/aus-world/internal/world"
)

// Simple representation to check stored records
type slotRecord struct {
	SeedName string         `json:"seed_name"`
	Player   int            `json:"player"`
	Game     string         `json:"game"`
	Data     map[string]any `json:"data"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning slot data records...")

	iter := client.Scan(ctx, 0, "slot_data:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasSuffix(key, ":players") {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if problem := check(data); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d records, found %d bad entries\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("All slot data is readable!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

func check(data string) string {
	var record slotRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return "corrupted JSON"
	}
	if record.Game != aus.Game {
		return fmt.Sprintf("game is %q", record.Game)
	}

	var missing []string
	for _, key := range world.SlotDataKeys() {
		if _, ok := record.Data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "missing " + strings.Join(missing, ", ")
	}

	if _, ok := record.Data[world.SlotDataDeathLink].(bool); !ok {
		return world.SlotDataDeathLink + " is not a boolean"
	}
	return ""
}
