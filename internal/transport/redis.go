package transport

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultList    = "swarm:outbox"
	defaultChannel = "swarm:pulse"
)

// Redis delivers results onto a Redis list and pub/sub channel, for setups
// where a separate poster process drains them. An unreachable server is an
// Init failure, so owners fall back to simulated mode instead of blocking
// business logic.
type Redis struct {
	URL      string
	Password string
	List     string
	Channel  string

	client *redis.Client
}

// NewRedis creates a Redis transport.
func NewRedis(url, password, list, channel string) *Redis {
	if list == "" {
		list = defaultList
	}
	if channel == "" {
		channel = defaultChannel
	}
	return &Redis{URL: url, Password: password, List: list, Channel: channel}
}

// Name identifies the transport.
func (r *Redis) Name() string { return "redis" }

// Init connects and pings the server.
func (r *Redis) Init(ctx context.Context) error {
	if r.URL == "" {
		return fmt.Errorf("redis URL not configured")
	}
	opts, err := redis.ParseURL(r.URL)
	if err != nil {
		return fmt.Errorf("invalid redis URL: %w", err)
	}
	if r.Password != "" {
		opts.Password = r.Password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.MaxRetries = 3

	c := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("redis ping: %w", err)
	}

	r.client = c
	log.Printf("[transport:redis] connected to %s", opts.Addr)
	return nil
}

// Deliver pushes the text onto the outbox list and publishes it.
func (r *Redis) Deliver(ctx context.Context, text string) error {
	if r.client == nil {
		return fmt.Errorf("redis not connected")
	}
	if err := r.client.RPush(ctx, r.List, text).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", r.List, err)
	}
	if err := r.client.Publish(ctx, r.Channel, text).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", r.Channel, err)
	}
	return nil
}

// Close releases the client if connected.
func (r *Redis) Close() error {
	if r.client == nil {
		return nil
	}
	err := r.client.Close()
	r.client = nil
	return err
}
