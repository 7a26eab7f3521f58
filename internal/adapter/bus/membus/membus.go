package membus

import (
	"context"
	"sync"

	"bank-backoffice/internal/core/ports"

	"github.com/rs/zerolog"
)

// Bus is an in-process ports.MessageBus. Each subscription owns an
// unbounded FIFO queue drained by one goroutine, so messages on a topic are
// handled in publish order — the same per-key ordering the stream bus
// provides — and a stalled consumer never blocks publishers or Close.
// It backs tests and single-process development runs.
type Bus struct {
	log zerolog.Logger

	mu     sync.Mutex
	subs   map[string][]*subscription
	closed bool
	wg     sync.WaitGroup
}

type subscription struct {
	group   string
	handler ports.BusHandler

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []message
	closed bool
}

type message struct {
	key     string
	payload []byte
}

func newSubscription(group string, handler ports.BusHandler) *subscription {
	s := &subscription{group: group, handler: handler}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// push appends to the queue. It never blocks the caller; after close the
// message is dropped.
func (s *subscription) push(msg message) {
	s.mu.Lock()
	if !s.closed {
		s.queue = append(s.queue, msg)
		s.cond.Signal()
	}
	s.mu.Unlock()
}

// next blocks until a message is queued. After close it keeps returning
// queued messages until the backlog is drained, then reports false.
func (s *subscription) next() (message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.queue) == 0 && !s.closed {
		s.cond.Wait()
	}
	if len(s.queue) == 0 {
		return message{}, false
	}
	msg := s.queue[0]
	s.queue = s.queue[1:]
	return msg, true
}

func (s *subscription) close() {
	s.mu.Lock()
	s.closed = true
	s.cond.Signal()
	s.mu.Unlock()
}

// New creates an in-process bus.
func New(log zerolog.Logger) *Bus {
	return &Bus{
		log:  log,
		subs: make(map[string][]*subscription),
	}
}

// Publish delivers the message to every group subscribed to the topic.
// Queues are unbounded, so Publish returns without waiting on consumers.
func (b *Bus) Publish(ctx context.Context, topic, key string, payload []byte) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	targets := make([]*subscription, len(b.subs[topic]))
	copy(targets, b.subs[topic])
	b.mu.Unlock()

	// Copy so a retained payload cannot be mutated by the caller.
	buf := make([]byte, len(payload))
	copy(buf, payload)

	for _, sub := range targets {
		sub.push(message{key: key, payload: buf})
	}
	return nil
}

// Subscribe registers a handler and starts its consumer goroutine.
func (b *Bus) Subscribe(topic, group string, handler ports.BusHandler) error {
	sub := newSubscription(group, handler)

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			msg, ok := sub.next()
			if !ok {
				return
			}
			if err := handler(context.Background(), msg.key, msg.payload); err != nil {
				b.log.Warn().Err(err).
					Str("topic", topic).
					Str("group", group).
					Str("key", msg.key).
					Msg("handler failed, message dropped")
			}
		}
	}()
	return nil
}

// Close stops delivery and waits for queued messages to drain.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.mu.Unlock()

	for _, list := range subs {
		for _, sub := range list {
			sub.close()
		}
	}
	b.wg.Wait()
}
