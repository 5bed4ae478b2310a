package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/guessdle/guessdle/internal/config"
)

var DB *gorm.DB
var Rdb *redis.Client

func Init(cfg *config.Config) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	redisConnection(cfg)
}

func redisConnection(cfg *config.Config) {
	ctx := context.Background()

	var tlsConfig *tls.Config
	if cfg.RedisTLS {
		tlsConfig = &tls.Config{}
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:      cfg.RedisAddr,
		Username:  cfg.RedisUsername,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		TLSConfig: tlsConfig,
	})

	pong, err := Rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	fmt.Println("Redis connected:", pong)
}
