package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error        string `json:"error"`
	NextPlayerID string `json:"next_player_id,omitempty"`
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: body must not be empty", apperror.ErrInvalidInput)
		}

		return fmt.Errorf("%w: %v", apperror.ErrInvalidInput, err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: body must only contain a single JSON value", apperror.ErrInvalidInput)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps domain errors to HTTP statuses. Anything unknown is logged and hidden.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusOf(err)

	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	response := errorResponse{Error: err.Error()}

	var outOfTurn *apperror.OutOfTurnError
	if errors.As(err, &outOfTurn) {
		response.NextPlayerID = outOfTurn.NextPlayerID
	}

	writeJSON(w, status, response)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidPlayersNumber):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCredentials),
		errors.Is(err, apperror.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrGameBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameFull),
		errors.Is(err, apperror.ErrAlreadyJoined),
		errors.Is(err, apperror.ErrGameInProgress),
		errors.Is(err, apperror.ErrNoActiveSeason),
		errors.Is(err, apperror.ErrNicknameTaken),
		errors.Is(err, apperror.ErrEmailTaken),
		errors.Is(err, apperror.ErrSeasonNameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
