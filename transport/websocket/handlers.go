package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
)

var errInternal = errors.New("internal server error")

func (that *Server) handleConnect(_ context.Context, client *Client, msg *Message) error {
	payload, ok := that.decode(client, msg)
	if !ok {
		return nil
	}

	playerID, err := that.auth.Authenticate(payload.Token)
	if err != nil {
		client.reply(msg.Action, Payload{Error: err.Error()})
		return nil
	}

	client.setPlayerID(playerID)
	client.reply(msg.Action, Payload{PlayerID: playerID})

	that.logger.Debug("player connected", "playerID", playerID)

	return nil
}

func (that *Server) handleGameWatch(ctx context.Context, client *Client, msg *Message) error {
	payload, ok := that.decode(client, msg)
	if !ok {
		return nil
	}

	state, err := that.games.GetGame(ctx, payload.GameID)
	if err != nil {
		return that.replyError(client, msg.Action, err)
	}

	that.hub.watch(client, state.Game.ID)
	client.reply(msg.Action, Payload{Game: state})

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, client *Client, msg *Message) error {
	payload, playerID, ok := that.decodeAuthorized(client, msg)
	if !ok {
		return nil
	}

	state, err := that.games.JoinGame(ctx, payload.GameID, playerID)
	if err != nil {
		return that.replyError(client, msg.Action, err)
	}

	// the joiner gets the state in the reply, the update goes to the others
	that.hub.watch(client, payload.GameID)

	client.reply(msg.Action, Payload{Game: state})

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, client *Client, msg *Message) error {
	payload, playerID, ok := that.decodeAuthorized(client, msg)
	if !ok {
		return nil
	}

	if payload.Row == nil || payload.Col == nil {
		client.reply(msg.Action, Payload{Error: "row and col are required"})
		return nil
	}

	state, err := that.games.MakeTurn(ctx, payload.GameID, playerID, *payload.Row, *payload.Col)
	if err != nil {
		return that.replyError(client, msg.Action, err)
	}

	client.reply(msg.Action, Payload{Game: state})

	return nil
}

func (that *Server) decode(client *Client, msg *Message) (Payload, bool) {
	var payload Payload
	if len(msg.Payload) == 0 {
		client.reply(msg.Action, Payload{Error: "payload is required"})
		return payload, false
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		client.reply(msg.Action, Payload{Error: "malformed payload"})
		return payload, false
	}

	return payload, true
}

func (that *Server) decodeAuthorized(client *Client, msg *Message) (Payload, string, bool) {
	playerID := client.PlayerID()
	if playerID == "" {
		client.reply(msg.Action, Payload{Error: apperror.ErrInvalidToken.Error()})
		return Payload{}, "", false
	}

	payload, ok := that.decode(client, msg)

	return payload, playerID, ok
}

// replyError answers rule violations to the client and reports only unexpected failures.
func (that *Server) replyError(client *Client, action string, err error) error {
	var outOfTurn *apperror.OutOfTurnError
	if errors.As(err, &outOfTurn) {
		client.reply(action, Payload{Error: err.Error(), NextPlayerID: outOfTurn.NextPlayerID})
		return nil
	}

	if isDomainError(err) {
		client.reply(action, Payload{Error: err.Error()})
		return nil
	}

	client.reply(action, Payload{Error: errInternal.Error()})

	return err
}

func isDomainError(err error) bool {
	for _, target := range []error{
		apperror.ErrNotFound,
		apperror.ErrInvalidInput,
		apperror.ErrInvalidCell,
		apperror.ErrCellOccupied,
		apperror.ErrGameFinished,
		apperror.ErrGameFull,
		apperror.ErrAlreadyJoined,
		apperror.ErrGameBusy,
		apperror.ErrInvalidToken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
