package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/mastermind"
)

type MastermindReply struct {
	SessionID int64              `json:"session_id"`
	Guesses   []mastermind.Guess `json:"guesses"`
	Done      bool               `json:"done"`
}

type mastermindGuess struct {
	Guess []int `json:"guess"`
}

type mastermindService struct {
	sessionRepo sessionRepo
	random      func() *rand.Rand
}

func NewMastermindService(sessionRepo sessionRepo) GameService {
	return &mastermindService{
		sessionRepo: sessionRepo,
		random:      newRand,
	}
}

func (that *mastermindService) Name() string {
	return entity.GameMastermind
}

func (that *mastermindService) Create(ctx context.Context) (*entity.Session, error) {
	game := mastermind.NewGame(that.random())

	session, err := that.sessionRepo.CreateSession(ctx, entity.GameMastermind, game)
	if err != nil {
		return nil, fmt.Errorf("failed to create mastermind session: %w", err)
	}

	return session, nil
}

func (that *mastermindService) Read(session *entity.Session) (any, error) {
	game, err := stateOf[*mastermind.Game](session)
	if err != nil {
		return nil, err
	}

	return MastermindReply{
		SessionID: session.ID,
		Guesses:   game.Guesses(),
		Done:      game.IsDone(),
	}, nil
}

func (that *mastermindService) Update(session *entity.Session, payload json.RawMessage) (any, error) {
	game, err := stateOf[*mastermind.Game](session)
	if err != nil {
		return nil, err
	}

	var request mastermindGuess
	if err = decodePayload(payload, &request); err != nil {
		return nil, err
	}

	if len(request.Guess) != mastermind.SequenceLength {
		return nil, fmt.Errorf("%w: guess needs %d digits, got %d",
			apperror.ErrInvalidRequest, mastermind.SequenceLength, len(request.Guess))
	}

	var sequence mastermind.Sequence
	copy(sequence[:], request.Guess)

	if _, err = game.Guess(sequence); err != nil {
		return nil, fmt.Errorf("failed to score guess %v: %w", request.Guess, err)
	}

	return that.Read(session)
}
