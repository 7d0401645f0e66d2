package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gammazero/workerpool"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

// RunTimeout acota cada corrida del pipeline; tiene que cubrir el prompt de 15s.
const RunTimeout = 60 * time.Second

// MessageHandler lo implementa *bot.Bot.
type MessageHandler interface {
	HandleInboundMessage(ctx context.Context, msg domain.Message) bool
}

type Router struct {
	s    *discordgo.Session
	tr   *Transport
	h    MessageHandler
	pool *workerpool.WorkerPool
	log  *slog.Logger
}

func NewRouter(s *discordgo.Session, tr *Transport, h MessageHandler, workers int, log *slog.Logger) *Router {
	if workers < 1 {
		workers = 1
	}
	return &Router{
		s:    s,
		tr:   tr,
		h:    h,
		pool: workerpool.New(workers),
		log:  log,
	}
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ev *discordgo.Ready) {
		r.log.Info("Logged in!", "user", toUser(ev.User).Tag(), "guilds", len(ev.Guilds))
	})

	r.s.AddHandler(func(s *discordgo.Session, mc *discordgo.MessageCreate) {
		if mc == nil || mc.Message == nil || mc.Author == nil {
			return
		}
		r.dispatch(mc.Message)
	})
}

// dispatch convierte el mensaje en el goroutine del evento y corre el pipeline en el pool.
func (r *Router) dispatch(m *discordgo.Message) {
	r.pool.Submit(func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error("panic dispatching message", "message_id", m.ID, "panic", rec)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), RunTimeout)
		defer cancel()
		defer step(r.log, "pipeline "+m.ID)()

		msg := r.tr.ToMessage(ctx, m)
		r.h.HandleInboundMessage(ctx, msg)
	})
}

// Stop espera a que terminen las corridas en curso.
func (r *Router) Stop() {
	r.pool.StopWait()
}

func (r *Router) Pending() int {
	return r.pool.WaitingQueueSize()
}
