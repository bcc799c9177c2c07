package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionRepo interface {
	Bind(ctx context.Context, sessionID, gameID string) error
	GameID(ctx context.Context, sessionID string) (string, error)
}

// GameManager drives stored games through the move and history operations.
// Operations on the same game ID are serialised.
type GameManager struct {
	logger      *slog.Logger
	gameRepo    gameRepo
	sessionRepo sessionRepo

	locksMutex sync.Mutex
	locks      map[string]*gameLock
}

type gameLock struct {
	sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		gameRepo:    gameRepo,
		sessionRepo: sessionRepo,
		locks:       make(map[string]*gameLock),
	}
}

// SessionGame returns the game bound to sessionID, binding a new game when the session
// has none or its game expired.
func (that *GameManager) SessionGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock := that.lock(sessionKey(sessionID))
	defer unlock()

	gameID, err := that.boundGameID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game, err := that.GetOrCreateGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = that.bind(ctx, sessionID, game.ID); err != nil {
		return nil, err
	}

	return game, nil
}

// RestartSessionGame replaces the session's game with a new one.
func (that *GameManager) RestartSessionGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	unlock := that.lock(sessionKey(sessionID))
	defer unlock()

	gameID, err := that.boundGameID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game, err := that.RestartGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = that.bind(ctx, sessionID, game.ID); err != nil {
		return nil, err
	}

	return game, nil
}

// GetOrCreateGame returns the stored game with id, or a new one when id is empty or unknown.
// IDs this service never issues are treated as unknown without asking the store.
func (that *GameManager) GetOrCreateGame(ctx context.Context, id string) (*entity.Game, error) {
	log := that.logger.With("method", "GetOrCreateGame")

	if !pkg.IsValidID(id) {
		if id != "" {
			log.Warn("malformed game id, creating a new game", "gameID", id)
		}
		return that.NewGame(ctx)
	}

	game, err := that.getGameByID(ctx, id)
	if errors.Is(err, apperror.ErrGameNotFound) {
		log.Info("game not found, creating a new one", "gameID", id)
		return that.NewGame(ctx)
	}

	if err != nil {
		return nil, err
	}

	return game, nil
}

// GetGame returns the stored game with id.
func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	if !pkg.IsValidID(id) {
		return nil, apperror.ErrGameNotFound
	}

	return that.getGameByID(ctx, id)
}

// NewGame stores and returns a game with a fresh ID and an empty board.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	that.logger.Info("game created", "method", "NewGame", "gameID", game.ID)

	return game, nil
}

// RestartGame replaces the game with id by a new one and deletes the old record.
func (that *GameManager) RestartGame(ctx context.Context, id string) (*entity.Game, error) {
	log := that.logger.With("method", "RestartGame", "gameID", id)

	if id != "" {
		if err := that.gameRepo.DeleteByID(ctx, id); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
			log.Error("failed to delete game", "error", err)
		}
	}

	return that.NewGame(ctx)
}

// ActivateCell plays the active mark at cell. Occupied cells and clicks after a win
// leave the game unchanged and are not reported as errors.
func (that *GameManager) ActivateCell(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "ActivateCell", "gameID", id, "cell", cell)

	unlock := that.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := gomoku.ActivateCell(game, cell)
	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if !changed {
		log.Debug("move ignored")
		return game, nil
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if winner, ok := gomoku.Winner(game); ok {
		log.Info("game won", "winner", winner.String(), "move", game.CurrentMove)
	}

	return game, nil
}

// JumpTo moves the game's pointer to move without changing its history.
func (that *GameManager) JumpTo(ctx context.Context, id string, move int) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.JumpTo(move); err != nil {
		return nil, fmt.Errorf("failed jump: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

// boundGameID returns "" for a session that has no game yet.
func (that *GameManager) boundGameID(ctx context.Context, sessionID string) (string, error) {
	gameID, err := that.sessionRepo.GameID(ctx, sessionID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to get session game: %w", err)
	}

	return gameID, nil
}

func (that *GameManager) bind(ctx context.Context, sessionID, gameID string) error {
	if err := that.sessionRepo.Bind(ctx, sessionID, gameID); err != nil {
		return fmt.Errorf("failed to bind session: %w", err)
	}

	return nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// lock takes the per-game mutex and returns its release function.
func (that *GameManager) lock(id string) func() {
	that.locksMutex.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &gameLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.locksMutex.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		that.locksMutex.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.locksMutex.Unlock()
	}
}
