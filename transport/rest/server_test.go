package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/minesweeper"
	"github.com/rocketscienceinc/arcade-backend/internal/repository"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
	"github.com/rocketscienceinc/arcade-backend/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sessions := repository.NewSessionRepository(repository.NewMemorySequence())

	arcade := usecase.NewArcadeUseCase(logger, sessions,
		service.NewMastermindService(sessions),
		service.NewCheckersService(sessions),
		service.NewMinesweeperService(sessions, minesweeper.DefaultSize, minesweeper.DefaultMines),
	)

	return New(logger, arcade)
}

func do(t *testing.T, srv http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	reply := map[string]any{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	}

	return rec.Code, reply
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestMenu(t *testing.T) {
	srv := newTestServer(t)

	code, reply := do(t, srv, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, code)
	games, ok := reply["games"].([]any)
	require.True(t, ok)
	require.Len(t, games, 3)
	assert.Equal(t, map[string]any{"name": "mastermind", "sessions": "/api/games/mastermind/sessions"}, games[0])
}

func TestCheckersLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Given: a new checkers session
	code, created := do(t, srv, http.MethodPost, "/api/games/checkers/sessions", "")
	require.Equal(t, http.StatusCreated, code)
	assert.InDelta(t, 1, created["session_id"], 0)

	// When: reading it
	code, read := do(t, srv, http.MethodGet, "/api/games/checkers/sessions/1", "")

	// Then: the starting snapshot comes back
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, read["done"])
	game := read["game"].(map[string]any) //nolint: forcetypeassert // test
	assert.Equal(t, "RED", game["turn"])
	assert.InDelta(t, 12, game["red_left"], 0)

	// When: asking for the moves of (3,2)
	code, moves := do(t, srv, http.MethodGet, "/api/games/checkers/sessions/1/moves?row=3&col=2", "")

	// Then: both plain steps are listed
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, moves["moves"], 2)

	// When: moving red from (3,2) to (4,3)
	code, updated := do(t, srv, http.MethodPut, "/api/games/checkers/sessions/1", `{"move":[[3,2],[4,3]]}`)

	// Then: it is black's turn
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "BLACK", updated["game"].(map[string]any)["turn"]) //nolint: forcetypeassert // test

	// When: red tries to move again
	code, rejected := do(t, srv, http.MethodPut, "/api/games/checkers/sessions/1", `{"move":[[3,4],[4,5]]}`)

	// Then: the move is refused with the sentinel reply
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.InDelta(t, 0, rejected["session_id"], 0)
	assert.Contains(t, rejected["error"], "not your turn")

	// When: listing and deleting
	code, list := do(t, srv, http.MethodGet, "/api/games/checkers/sessions", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, list["sessions"], 1)

	code, deleted := do(t, srv, http.MethodDelete, "/api/games/checkers/sessions/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 1, deleted["session_id"], 0)

	// Then: a second delete is not found
	code, again := do(t, srv, http.MethodDelete, "/api/games/checkers/sessions/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.InDelta(t, 0, again["session_id"], 0)
}

func TestMastermindAndMinesweeper(t *testing.T) {
	srv := newTestServer(t)

	code, _ := do(t, srv, http.MethodPost, "/api/games/mastermind/sessions", "")
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, srv, http.MethodPost, "/api/games/minesweeper/sessions", "")
	require.Equal(t, http.StatusCreated, code)

	t.Run("Guess is recorded", func(t *testing.T) {
		code, reply := do(t, srv, http.MethodPut, "/api/games/mastermind/sessions/1", `{"guess":[0,1,2,3]}`)

		require.Equal(t, http.StatusOK, code)
		assert.Len(t, reply["guesses"], 1)
	})

	t.Run("Bad guess is a bad request", func(t *testing.T) {
		code, reply := do(t, srv, http.MethodPut, "/api/games/mastermind/sessions/1", `{"guess":[0,0,1,2]}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.InDelta(t, 0, reply["session_id"], 0)
	})

	t.Run("Minesweeper flag", func(t *testing.T) {
		code, reply := do(t, srv, http.MethodPut, "/api/games/minesweeper/sessions/2", `{"flag":[0,0]}`)

		require.Equal(t, http.StatusOK, code)
		assert.InDelta(t, minesweeper.DefaultMines-1, reply["flags"], 0)
		assert.Equal(t, "F########", reply["board"].([]any)[0]) //nolint: forcetypeassert // test
	})

	t.Run("Session of another game is not found", func(t *testing.T) {
		code, _ := do(t, srv, http.MethodGet, "/api/games/checkers/sessions/1", "")

		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestRejectedRequests(t *testing.T) {
	srv := newTestServer(t)

	testCases := []struct {
		name   string
		method string
		target string
		status int
	}{
		{name: "Unknown game", method: http.MethodPost, target: "/api/games/tictactoe/sessions", status: http.StatusNotFound},
		{name: "Unknown session", method: http.MethodGet, target: "/api/games/checkers/sessions/42", status: http.StatusNotFound},
		{name: "Malformed id", method: http.MethodGet, target: "/api/games/checkers/sessions/abc", status: http.StatusBadRequest},
		{name: "Zero id", method: http.MethodDelete, target: "/api/games/checkers/sessions/0", status: http.StatusBadRequest},
		{name: "Moves without coordinates", method: http.MethodGet, target: "/api/games/checkers/sessions/1/moves", status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, reply := do(t, srv, tc.method, tc.target, "")

			assert.Equal(t, tc.status, code)
			assert.InDelta(t, 0, reply["session_id"], 0)
			assert.NotEmpty(t, reply["error"])
		})
	}
}

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{err: apperror.ErrNotFound, status: http.StatusNotFound},
		{err: apperror.ErrUnknownGame, status: http.StatusNotFound},
		{err: apperror.ErrIllegalMove, status: http.StatusUnprocessableEntity},
		{err: apperror.ErrOutOfRange, status: http.StatusBadRequest},
		{err: apperror.ErrGameFinished, status: http.StatusBadRequest},
		{err: apperror.ErrInvalidRequest, status: http.StatusBadRequest},
		{err: apperror.ErrInvariantViolation, status: http.StatusInternalServerError},
		{err: errors.New("redis down"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.status, statusOf(tc.err))
		})
	}
}
