package discord

import (
	"context"
	"sync"
	"time"

	"github.com/samber/mo"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

type pendingReaction struct {
	messageID string
	filter    func(domain.ReactionEvent) bool
	ch        chan domain.ReactionEvent
}

// reactionWaiter reparte los MessageReactionAdd entre las esperas activas.
// Cada espera recibe a lo sumo un evento.
type reactionWaiter struct {
	mu      sync.Mutex
	seq     uint64
	pending map[uint64]*pendingReaction
}

func newReactionWaiter() *reactionWaiter {
	return &reactionWaiter{pending: map[uint64]*pendingReaction{}}
}

func (w *reactionWaiter) register(messageID string, filter func(domain.ReactionEvent) bool) (uint64, <-chan domain.ReactionEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	p := &pendingReaction{messageID: messageID, filter: filter, ch: make(chan domain.ReactionEvent, 1)}
	w.pending[w.seq] = p
	return w.seq, p.ch
}

func (w *reactionWaiter) cancel(id uint64) {
	w.mu.Lock()
	delete(w.pending, id)
	w.mu.Unlock()
}

func (w *reactionWaiter) deliver(ev domain.ReactionEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, p := range w.pending {
		if p.messageID != ev.MessageID || (p.filter != nil && !p.filter(ev)) {
			continue
		}
		p.ch <- ev
		delete(w.pending, id)
	}
}

func (w *reactionWaiter) await(ctx context.Context, messageID string, filter func(domain.ReactionEvent) bool, timeout time.Duration) (mo.Option[domain.ReactionEvent], error) {
	id, ch := w.register(messageID, filter)
	defer w.cancel(id)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-ch:
		return mo.Some(ev), nil
	case <-timer.C:
		return mo.None[domain.ReactionEvent](), nil
	case <-ctx.Done():
		return mo.None[domain.ReactionEvent](), ctx.Err()
	}
}

func (w *reactionWaiter) size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
