package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	errInvalidMessage = "invalid message"
	errInvalidPayload = "invalid payload"
	errGameRequired   = "game is required"
	errCellRequired   = "cell is required"
	errMoveRequired   = "move is required"
	errGameNotFound   = "game not found"
	errForeignGame    = "game belongs to another session"
	errInvalidMove    = "invalid move"
	errInternal       = "internal error"
)

func decodePayload(msg *Message) (*RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

// payload - decodes the request payload or tells the client it could not.
func (that *session) payload(msg *Message) (*RequestPayload, bool, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		that.logger.Warn("rejected payload", "action", msg.Action, "error", err)
		return nil, false, that.sendError(msg.Action, errInvalidPayload)
	}

	return payload, true, nil
}

// boundGame - the game this session drives, "" before connect. A payload may name it but never another one.
func (that *session) boundGame(payload *RequestPayload) (string, error) {
	if id := payload.gameID(); id != "" && id != that.gameID {
		return "", fmt.Errorf("%w: %s", apperror.ErrForeignGame, id)
	}

	return that.gameID, nil
}

func (that *Server) handleConnect(ctx context.Context, sess *session, msg *Message) error {
	log := sess.logger.With("method", "handleConnect")

	if _, ok, err := sess.payload(msg); !ok {
		return err
	}

	game, err := that.uGame.SessionGame(ctx, sess.id)
	if err != nil {
		log.Error("failed to get session game", "error", err)
		return sess.sendError(msg.Action, errInternal)
	}

	log.Info("player connected", "gameID", game.ID)

	return sess.sendGame(msg.Action, game)
}

func (that *Server) handleNewGame(ctx context.Context, sess *session, msg *Message) error {
	log := sess.logger.With("method", "handleNewGame")

	if _, ok, err := sess.payload(msg); !ok {
		return err
	}

	game, err := that.uGame.RestartSessionGame(ctx, sess.id)
	if err != nil {
		log.Error("failed to create a new game", "error", err)
		return sess.sendError(msg.Action, errInternal)
	}

	return sess.sendGame(msg.Action, game)
}

func (that *Server) handleGameTurn(ctx context.Context, sess *session, msg *Message) error {
	payload, ok, err := sess.payload(msg)
	if !ok {
		return err
	}

	gameID, err := sess.boundGame(payload)
	if err != nil {
		return that.replyWithGame(sess, msg.Action, nil, err)
	}

	if gameID == "" {
		return sess.sendError(msg.Action, errGameRequired)
	}

	if payload.Cell == nil {
		return sess.sendError(msg.Action, errCellRequired)
	}

	game, err := that.uGame.ActivateCell(ctx, gameID, *payload.Cell)

	return that.replyWithGame(sess, msg.Action, game, err)
}

func (that *Server) handleGameJump(ctx context.Context, sess *session, msg *Message) error {
	payload, ok, err := sess.payload(msg)
	if !ok {
		return err
	}

	gameID, err := sess.boundGame(payload)
	if err != nil {
		return that.replyWithGame(sess, msg.Action, nil, err)
	}

	if gameID == "" {
		return sess.sendError(msg.Action, errGameRequired)
	}

	if payload.Move == nil {
		return sess.sendError(msg.Action, errMoveRequired)
	}

	game, err := that.uGame.JumpTo(ctx, gameID, *payload.Move)

	return that.replyWithGame(sess, msg.Action, game, err)
}

// replyWithGame - sends the game or translates err into a client message.
func (that *Server) replyWithGame(sess *session, action string, game *entity.Game, err error) error {
	log := sess.logger.With("method", "replyWithGame", "action", action)

	switch {
	case err == nil:
		return sess.sendGame(action, game)
	case errors.Is(err, apperror.ErrForeignGame):
		log.Warn("rejected request", "error", err)
		return sess.sendError(action, errForeignGame)
	case errors.Is(err, apperror.ErrGameNotFound):
		return sess.sendError(action, errGameNotFound)
	case errors.Is(err, gomoku.ErrInvalidCell), errors.Is(err, apperror.ErrMoveOutOfRange):
		log.Warn("rejected request", "error", err)
		return sess.sendError(action, errInvalidMove)
	default:
		log.Error("failed to process request", "error", err)
		return sess.sendError(action, errInternal)
	}
}
