package redisbus

import (
	"context"
	"strings"
	"sync"
	"time"

	"bank-backoffice/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Bus implements ports.MessageBus on Redis Streams. Each topic is one
// stream; the message key travels as a field. A single consumer per group
// reads the stream in order, which gives per-key ordering, and unacked
// entries are redelivered, which gives at-least-once semantics.
type Bus struct {
	client *goredis.Client
	log    zerolog.Logger
	block  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a stream bus. block is the XREADGROUP block duration.
func New(client *goredis.Client, block time.Duration, log zerolog.Logger) *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bus{
		client: client,
		log:    log,
		block:  block,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Publish appends a message to the topic stream.
func (b *Bus) Publish(ctx context.Context, topic, key string, payload []byte) error {
	return b.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: topic,
		Values: map[string]interface{}{
			"key":     key,
			"payload": payload,
		},
	}).Err()
}

// Subscribe registers a handler for a topic under a consumer group and
// starts consuming. The consumer name is stable so entries left pending by
// a crash are drained before new ones are read.
func (b *Bus) Subscribe(topic, group string, handler ports.BusHandler) error {
	err := b.client.XGroupCreateMkStream(b.ctx, topic, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return err
	}

	b.wg.Add(1)
	go b.consume(topic, group, group+"-main", handler)
	return nil
}

// Close stops all consumers and waits for them to drain.
func (b *Bus) Close() {
	b.cancel()
	b.wg.Wait()
}

func (b *Bus) consume(topic, group, consumer string, handler ports.BusHandler) {
	defer b.wg.Done()

	// The cursor alternates between "0" and ">". A "0" read is one pass
	// over this consumer's pending entries: the backlog a previous run left
	// behind, plus anything a handler error left unacked. A ">" read blocks
	// for new messages; whenever it comes back empty the cursor flips to
	// "0" again, so failed entries are redelivered at the block interval
	// without waiting for a process restart.
	cursor := "0"
	for {
		if b.ctx.Err() != nil {
			return
		}

		res, err := b.client.XReadGroup(b.ctx, &goredis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{topic, cursor},
			Count:    16,
			Block:    b.block,
		}).Result()
		if err != nil {
			if b.ctx.Err() != nil {
				return
			}
			if err == goredis.Nil {
				cursor = flip(cursor)
				continue
			}
			b.log.Error().Err(err).Str("topic", topic).Msg("stream read failed")
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				b.dispatch(topic, group, msg, handler)
			}
		}
		// A single pending pass at a time. Entries that failed during this
		// pass stay pending until the next one, which paces retries of a
		// persistently failing handler at the block interval instead of a
		// tight loop.
		if cursor == "0" {
			cursor = ">"
		}
	}
}

func flip(cursor string) string {
	if cursor == "0" {
		return ">"
	}
	return "0"
}

func (b *Bus) dispatch(topic, group string, msg goredis.XMessage, handler ports.BusHandler) {
	key, _ := msg.Values["key"].(string)
	payload, _ := msg.Values["payload"].(string)

	if err := handler(b.ctx, key, []byte(payload)); err != nil {
		// Leave unacked; the entry stays pending and is redelivered.
		b.log.Warn().Err(err).
			Str("topic", topic).
			Str("key", key).
			Str("msg_id", msg.ID).
			Msg("handler failed, message left pending")
		return
	}

	if err := b.client.XAck(b.ctx, topic, group, msg.ID).Err(); err != nil {
		b.log.Warn().Err(err).Str("topic", topic).Str("msg_id", msg.ID).Msg("ack failed")
	}
}
