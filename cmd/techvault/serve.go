package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Spok95/techvault/internal/api"
	"github.com/Spok95/techvault/internal/bot"
	"github.com/Spok95/techvault/internal/dialog"
	httpx "github.com/Spok95/techvault/internal/infra/http"
	"github.com/Spok95/techvault/internal/infra/mockapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and, if a token is set, the Telegram bot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		kv, closeKV, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeKV()
		inv := newInventory(kv, cfg)

		var sim *mockapi.Simulator
		if cfg.MockAPI.Enabled {
			sim = mockapi.New(mockapi.Config{
				BaseDelay:   cfg.MockAPI.BaseDelay,
				Jitter:      cfg.MockAPI.Jitter,
				SuccessRate: cfg.MockAPI.SuccessRate,
			}, log, time.Now().UnixNano())
		}
		srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, api.NewHandler(log, inv, sim))

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info("HTTP server started", "addr", srv.Addr())
			return srv.Start()
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if cfg.Telegram.Token != "" {
			tg, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
			if err != nil {
				stop()
				_ = g.Wait()
				return err
			}
			log.Info("telegram bot authorized", "username", tg.Self.UserName)
			b := bot.New(tg, log, inv, dialog.NewRepo(kv), cfg.Telegram.AdminChatID)
			g.Go(func() error { return ignoreCanceled(b.Run(gctx, 30)) })
			if cfg.Telegram.AdminChatID != 0 {
				g.Go(func() error { return ignoreCanceled(b.RunDigest(gctx, cfg.Digest.Interval)) })
			} else {
				log.Warn("telegram.admin_chat_id is not set, digest disabled")
			}
		}

		if err := g.Wait(); err != nil {
			return err
		}
		log.Info("graceful shutdown complete")
		return nil
	},
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
