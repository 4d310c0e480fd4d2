package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
	"github.com/rocketscienceinc/pebbles-backend/internal/pkg"
)

type gameManager interface {
	Initialize(ctx context.Context, messageID string, config entity.GameConfig) (*entity.Game, entity.Event, error)
	ApplyAction(ctx context.Context, messageID string, action entity.Action) (*entity.Game, entity.Event, error)
	ReadState(ctx context.Context) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, message *Message) (*Payload, error)

type Server struct {
	logger      *slog.Logger
	gameManager gameManager

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameManager gameManager) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameManager: gameManager,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionInit] = server.handleInit
	server.handlers[ActionTurn] = server.handleTurn
	server.handlers[ActionGiveUp] = server.handleGiveUp
	server.handlers[ActionRestart] = server.handleRestart
	server.handlers[ActionState] = server.handleState

	return server
}

// Handler - returns the http handler serving websocket connections on /ws.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWebSocket)

	return mux
}

// Start - starts WebSocket server. It returns once ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWebSocket - accepts the connection and processes its messages one by one.
func (that *Server) serveWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWebSocket", "remote", req.RemoteAddr)

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}

	defer conn.CloseNow()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	if err = conn.Close(websocket.StatusNormalClosure, ""); err != nil {
		log.Warn("failed to close websocket", "error", err)
	}
}

// handleMessages - processes messages from the client until it goes away.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Info("WebSocket connection closed")
				return nil
			default:
				return fmt.Errorf("failed to read message: %w", err)
			}
		}

		response := that.processMessage(ctx, data)

		if err = that.sendMessage(ctx, conn, response); err != nil {
			return err
		}
	}
}

func (that *Server) processMessage(ctx context.Context, data []byte) *Message {
	log := that.logger.With("method", "processMessage")

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		return newMessage("", ActionError, &Payload{Error: "malformed message"})
	}

	// the id only pairs the reply with its request
	if message.ID == "" {
		message.ID = pkg.GenerateMessageID()
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action", "action", message.Action)
		return newMessage(message.ID, message.Action, &Payload{Error: fmt.Sprintf("unknown action %q", message.Action)})
	}

	payload, err := handler(ctx, &message)
	if err != nil {
		log.Warn("error processing message", "action", message.Action, "error", err)
		return newMessage(message.ID, message.Action, &Payload{Error: err.Error()})
	}

	return newMessage(message.ID, message.Action, payload)
}
