package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type StateHandler interface {
	StateHandler(w http.ResponseWriter, r *http.Request)
}

type stateHandler struct {
	logger *slog.Logger
	reader stateReader
}

func NewStateHandler(logger *slog.Logger, reader stateReader) StateHandler {
	return &stateHandler{
		logger: logger,
		reader: reader,
	}
}

// StateHandler - writes the current game as JSON.
func (that *stateHandler) StateHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StateHandler")

	game, err := that.reader.ReadState(r.Context())
	if err != nil {
		log.Error("failed to read game state", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(game); err != nil {
		log.Error("failed to write game state", "error", err)
	}
}
