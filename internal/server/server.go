// Package server exposes the webhook endpoint that receives events from the
// messaging platform and relays handler replies.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gptline/gptline/internal/config"
	"github.com/gptline/gptline/internal/line"
	"github.com/gptline/gptline/internal/logger"
)

// Webhook bodies are small; anything larger is rejected before parsing.
const maxBodyBytes = 1 << 20

// EventHandler turns one webhook event into reply messages.
type EventHandler interface {
	HandleEvent(ctx context.Context, event line.Event) []line.SendingMessage
}

// Replier sends reply messages back to the platform.
type Replier interface {
	ReplyMessage(ctx context.Context, replyToken string, messages ...line.SendingMessage) error
}

// Server is the HTTP front of the bot.
type Server struct {
	echo          *echo.Echo
	addr          string
	channelSecret string
	handler       EventHandler
	replier       Replier
	logger        *slog.Logger
}

// New creates the server with all routes registered.
func New(cfg *config.Config, handler EventHandler, replier Replier, log *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(logger.RequestMiddleware(log))

	s := &Server{
		echo:          e,
		addr:          cfg.ServerAddr,
		channelSecret: cfg.LineChannelSecret,
		handler:       handler,
		replier:       replier,
		logger:        log,
	}

	// Liveness probe used by the hosting platform
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World")
	})
	e.POST("/callback", s.handleCallback)

	return s
}

func (s *Server) handleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes+1))
	if err != nil {
		return c.String(http.StatusBadRequest, "failed to read body")
	}
	if len(body) > maxBodyBytes {
		return c.String(http.StatusRequestEntityTooLarge, "body too large")
	}

	events, err := line.ParseWebhook(s.channelSecret, c.Request().Header.Get(line.SignatureHeader), body)
	if err != nil {
		s.logger.WarnContext(ctx, "Rejected webhook request", "error", err)
		return c.String(http.StatusBadRequest, "invalid request")
	}

	for _, event := range events {
		messages := s.handler.HandleEvent(ctx, event)
		if len(messages) == 0 || event.ReplyToken == "" {
			continue
		}
		if err := s.replier.ReplyMessage(ctx, event.ReplyToken, messages...); err != nil {
			s.logger.ErrorContext(ctx, "Failed to send reply", "error", err)
		}
	}

	return c.String(http.StatusOK, "OK")
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Server listening", "addr", s.addr)
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
