package notify

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type Observer interface {
	OnItemAvailable(ctx context.Context, identifier string) error
}

type ObserverFunc func(ctx context.Context, identifier string) error

func (f ObserverFunc) OnItemAvailable(ctx context.Context, identifier string) error {
	return f(ctx, identifier)
}

// Hub keeps one-shot subscriptions per identifier. Publishing drains the list;
// nothing is queued for identifiers without subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[string][]Observer
	log  *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[string][]Observer),
		log:  log.Named("notify"),
	}
}

func (h *Hub) Subscribe(identifier string, o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := strings.ToLower(identifier)
	h.subs[key] = append(h.subs[key], o)
}

func (h *Hub) Subscribers(identifier string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[strings.ToLower(identifier)])
}

// PublishAvailable notifies and forgets every subscriber of identifier.
// Observer failures are logged, the subscription is gone either way.
func (h *Hub) PublishAvailable(ctx context.Context, identifier string) int {
	h.mu.Lock()
	key := strings.ToLower(identifier)
	subs := h.subs[key]
	delete(h.subs, key)
	h.mu.Unlock()

	for _, o := range subs {
		if err := o.OnItemAvailable(ctx, identifier); err != nil {
			h.log.Warn("notify subscriber", zap.String("identifier", identifier), zap.Error(err))
		}
	}
	if len(subs) > 0 {
		h.log.Info("item available published", zap.String("identifier", identifier), zap.Int("subscribers", len(subs)))
	}
	return len(subs)
}
