package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/jose-valero/harmony-bot/internal/adapters/discord"
	"github.com/jose-valero/harmony-bot/internal/adapters/httpstatus"
	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/app/commands"
	"github.com/jose-valero/harmony-bot/internal/infra/config"
	"github.com/jose-valero/harmony-bot/internal/infra/logging"
	"github.com/jose-valero/harmony-bot/internal/infra/storage"
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsDirectMessageReactions |
	discordgo.IntentsMessageContent

func main() {
	_ = godotenv.Load()

	var opts config.Options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts config.Options) error {
	cfg, err := config.Load(opts, os.Getenv)
	if err != nil {
		return err
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.Development())
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	discord.RouteLogs(log)

	ctx := context.Background()

	// DB
	db, err := storage.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	prefs := storage.NewPreferenceStore(db, log)
	if err := prefs.Ready(ctx); err != nil {
		return err
	}
	log.Info("✅ DB lista y migrada", "driver", cfg.DatabaseDriver)

	// Discord session
	auth := strings.TrimSpace(cfg.Token)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	s, err := discordgo.New(auth)
	if err != nil {
		return err
	}
	s.Identify.Intents = intents

	tr := discord.NewTransport(s, log)
	b, err := bot.New(tr, prefs, bot.Options{Prefix: cfg.Prefix, Logger: log}, func(b *bot.Bot) []bot.Command {
		return commands.Builtin(b)
	})
	if err != nil {
		return err
	}

	r := discord.NewRouter(s, tr, b, cfg.Workers, log)
	r.Handlers()

	if err := s.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer s.Close()

	var web *httpstatus.Server
	if cfg.HTTPAddr != "" {
		web = httpstatus.New(b, r.Pending, log)
		go func() {
			if err := web.Start(cfg.HTTPAddr); err != nil {
				log.Error("http server", "error", err)
			}
		}()
	}

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
	log.Info("shutting down")

	if web != nil {
		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := web.Shutdown(sctx); err != nil {
			log.Warn("http shutdown", "error", err)
		}
	}
	r.Stop()
	return nil
}
