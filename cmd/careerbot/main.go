package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/bot"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/console"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/conversation"
	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/httpapi"
)

var version = "dev"

type botRunner interface {
	Start(ctx context.Context) error
}

var newBot = func(token string, sessions *conversation.Registry, logger *zap.Logger) (botRunner, error) {
	return bot.New(token, sessions, logger)
}

var configPath string

var rootCmd = &cobra.Command{
	Use:           "careerbot",
	Short:         "CareerAI career assistant: HTTP API, Telegram bot and console",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API, and the Telegram bot when a token is configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), "", runServe)
	},
}

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run only the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), "", runBot)
	},
}

var verbose bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the agents in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		return withApp(cmd.Context(), level, runChat)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "careerbot %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the config file")
	chatCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show debug logs")
	rootCmd.AddCommand(serveCmd, botCmd, chatCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context, a *app) error {
	var b botRunner
	if a.cfg.Telegram.Token != "" {
		var err error
		if b, err = newBot(a.cfg.Telegram.Token, a.sessions, a.logger); err != nil {
			return err
		}
	} else {
		a.logger.Info("Telegram token not set, bot disabled")
	}

	router := a.server().Router(httpapi.RouterOptions{
		CORSOrigins:     httpapi.ParseOrigins(a.cfg.Server.CORSOrigins),
		RateLimitPerMin: a.cfg.Server.RateLimitPerMin,
		Gatherer:        a.registry,
	})
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), 10*time.Second)
		defer cancel()
		a.logger.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	if b != nil {
		g.Go(func() error { return b.Start(gCtx) })
	}
	return g.Wait()
}

func runBot(ctx context.Context, a *app) error {
	if a.cfg.Telegram.Token == "" {
		return errors.New("telegram token is not configured, set TELEGRAM_TOKEN")
	}
	b, err := newBot(a.cfg.Telegram.Token, a.sessions, a.logger)
	if err != nil {
		return err
	}
	a.logger.Info("Bot started")
	return b.Start(ctx)
}

func runChat(ctx context.Context, a *app) error {
	session := a.sessions.Session(conversation.NewSessionID())
	return console.New(session, os.Stdin, os.Stdout, a.logger).Run(ctx)
}
