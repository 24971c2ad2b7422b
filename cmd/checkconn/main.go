// checkconn verifies that the configured MongoDB (and Redis, when REDIS_URL
// is set) are reachable and that the token settings are usable.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/skincare/internal/config"
	"github.com/xyz-asif/skincare/internal/database"
	"github.com/xyz-asif/skincare/internal/pkg/cache"
	"github.com/xyz-asif/skincare/internal/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config invalid:", err)
	}

	fmt.Println("Testing MongoDB connection...")
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}
	defer db.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	names, err := db.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		log.Fatal("MongoDB list collections failed:", err)
	}
	fmt.Printf("✅ MongoDB connected (%s, %d collections)\n", cfg.MongoDB, len(names))

	fmt.Println("\nTesting token settings...")
	tokens, err := token.NewManager(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL())
	if err != nil {
		log.Fatal("Token settings invalid:", err)
	}
	signed, err := tokens.IssueAccessToken("checkconn@example.com")
	if err != nil {
		log.Fatal("Token signing failed:", err)
	}
	if _, err := tokens.Parse(signed); err != nil {
		log.Fatal("Token verification failed:", err)
	}
	fmt.Printf("✅ Tokens OK (%s, ttl %s)\n", cfg.JWTAlgorithm, tokens.TTL())

	if cfg.RedisURL == "" {
		fmt.Println("\nREDIS_URL not set, stats cache disabled")
	} else {
		fmt.Println("\nTesting Redis connection...")
		rc, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		defer rc.Close()
		fmt.Println("✅ Redis connected successfully!")
	}

	fmt.Println("\n🎉 All systems ready!")
}
