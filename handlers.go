package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/dgrr/websocket"
	"github.com/valyala/fasthttp"
)

var (
	errInvalidJSON    = errors.New("invalid JSON")
	errInvalidMessage = errors.New("invalid message")
)

// server answers phrase requests over plain HTTP and WebSocket.
type server struct {
	source phraseSource
	origin string
	log    *slog.Logger
	ws     *websocket.Server
	conns  *connectionMap
}

func newServer(source phraseSource, origin string, logger *slog.Logger) *server {
	s := &server{
		source: source,
		origin: origin,
		log:    logger,
		ws:     &websocket.Server{},
		conns:  newConnectionMap(),
	}
	s.ws.HandleData(s.dataHandler)
	s.ws.HandleClose(s.disconnectHandler)
	return s
}

func (s *server) handleRequest(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	s.log.Debug("request",
		slog.String("method", string(ctx.Method())),
		slog.String("path", path),
		slog.String("remote", ctx.RemoteAddr().String()),
	)

	if path == "/ws" {
		s.ws.Upgrade(ctx)
		return
	}

	if s.origin != "" {
		ctx.Response.Header.Set("Access-Control-Allow-Origin", s.origin)
	}
	if ctx.IsOptions() {
		ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}
	if !ctx.IsGet() {
		writeJSON(ctx, fasthttp.StatusMethodNotAllowed, ErrorMsg{Error: "method not allowed"})
		return
	}

	switch path {
	case "/passphrase":
		passphrase, err := s.source.Passphrase(ctx)
		if err != nil {
			s.fail(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, PassphraseMsg{Passphrase: passphrase})
	case "/emojiphrase":
		emojiphrase, err := s.source.Emojiphrase(ctx)
		if err != nil {
			s.fail(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, EmojiphraseMsg{
			Emojiphrase: emojiphrase.Names,
			Emojis:      emojiphrase.Icons,
		})
	case "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, HealthMsg{Status: "ok", Connections: s.conns.len()})
	default:
		writeJSON(ctx, fasthttp.StatusNotFound, ErrorMsg{Error: "not found"})
	}
}

func (s *server) fail(ctx *fasthttp.RequestCtx, err error) {
	s.log.Error("generating phrase", slog.String("path", string(ctx.Path())), slog.Any("error", err))
	writeJSON(ctx, fasthttp.StatusInternalServerError, ErrorMsg{Error: err.Error()})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (s *server) dataHandler(conn *websocket.Conn, isBin bool, data []byte) {
	s.conns.register(conn.ID())

	ans, err := s.reply(context.Background(), data)
	if err != nil {
		conn.CloseDetail(websocket.StatusNotAcceptable, err.Error())
		s.log.Warn("rejected websocket message",
			slog.String("remote", conn.RemoteAddr().String()),
			slog.Any("error", err),
		)
		return
	}

	if _, err := conn.Write(ans); err != nil {
		s.log.Error("writing websocket reply", slog.Uint64("conn", conn.ID()), slog.Any("error", err))
		return
	}
	s.conns.recordServed(conn.ID())
}

func (s *server) disconnectHandler(conn *websocket.Conn, err error) {
	served, _ := s.conns.unregister(conn.ID())
	s.log.Info("websocket closed",
		slog.String("remote", conn.RemoteAddr().String()),
		slog.Int("served", served),
		slog.Any("reason", err),
	)
}

// reply builds the answer to one WebSocket request. Generation failures are
// reported to the peer as an error message; malformed requests are returned
// as errors so the caller can close the connection.
func (s *server) reply(ctx context.Context, data []byte) ([]byte, error) {
	var msg requestMsg
	if err := sonic.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidJSON, err)
	}

	switch msg.Type {
	case passphraseType:
		passphrase, err := s.source.Passphrase(ctx)
		if err != nil {
			return sonic.Marshal(ErrorMsg{Type: errorType, Error: err.Error()})
		}
		return sonic.Marshal(PassphraseMsg{Type: passphraseType, Passphrase: passphrase})
	case emojiphraseType:
		emojiphrase, err := s.source.Emojiphrase(ctx)
		if err != nil {
			return sonic.Marshal(ErrorMsg{Type: errorType, Error: err.Error()})
		}
		return sonic.Marshal(EmojiphraseMsg{
			Type:        emojiphraseType,
			Emojiphrase: emojiphrase.Names,
			Emojis:      emojiphrase.Icons,
		})
	default:
		return nil, fmt.Errorf("%w: %q", errInvalidMessage, msg.Type)
	}
}
