package httpstatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

// Source lo implementa *bot.Bot.
type Source interface {
	Stats() bot.Stats
	Self() domain.User
}

type Server struct {
	src     Source
	pending func() int
	log     *slog.Logger
	mux     *http.ServeMux
	srv     *http.Server
}

type statsResponse struct {
	User    string    `json:"user"`
	Pending int       `json:"pending"`
	Stats   bot.Stats `json:"stats"`
}

// New arma el server. pending puede ser nil.
func New(src Source, pending func() int, log *slog.Logger) *Server {
	s := &Server{src: src, pending: pending, log: log, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/stats", s.handleStats)
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	resp := statsResponse{User: s.src.Self().Tag(), Stats: s.src.Stats()}
	if s.pending != nil {
		resp.Pending = s.pending()
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Warn("stats encode", "error", err)
	}
}

// Start bloquea hasta que el server se cierre con Shutdown.
func (s *Server) Start(addr string) error {
	s.srv = &http.Server{Addr: addr, Handler: s.mux, ReadHeaderTimeout: 5 * time.Second}
	s.log.Info("🌐 HTTP listening", "addr", addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
