package vote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movierama/internal/api/middleware"
	"movierama/internal/core/movies"
	"movierama/internal/core/votes"
)

type mockVoteService struct {
	mock.Mock
}

func (m *mockVoteService) VoteMovie(ctx context.Context, userID, movieID int64, kind votes.Kind) (*movies.Movie, error) {
	args := m.Called(ctx, userID, movieID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Movie), args.Error(1)
}

func (m *mockVoteService) GetUserVotesForMovies(ctx context.Context, userID int64, movieIDs []int64) (map[int64]votes.Kind, error) {
	args := m.Called(ctx, userID, movieIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]votes.Kind), args.Error(1)
}

func userVotesRequest(userID int64, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes/user-votes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req = req.WithContext(middleware.SetTestUser(req.Context(), userID, "voter"))
	}
	return req, httptest.NewRecorder()
}

func TestHandleUserVotes(t *testing.T) {
	service := new(mockVoteService)
	service.On("GetUserVotesForMovies", mock.Anything, int64(7), []int64{1, 2, 3}).
		Return(map[int64]votes.Kind{1: votes.KindLike, 3: votes.KindHate}, nil)

	handler := NewUserVotesHandler(service)
	req, rec := userVotesRequest(7, `[1, 2, 3]`)
	handler.HandleUserVotes(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[int64]votes.Kind
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, map[int64]votes.Kind{1: votes.KindLike, 3: votes.KindHate}, got)

	service.AssertExpectations(t)
}

func TestHandleUserVotes_InvalidBody(t *testing.T) {
	service := new(mockVoteService)
	handler := NewUserVotesHandler(service)

	req, rec := userVotesRequest(7, `{"not":"a list"}`)
	handler.HandleUserVotes(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "GetUserVotesForMovies", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleUserVotes_Unauthenticated(t *testing.T) {
	service := new(mockVoteService)
	handler := NewUserVotesHandler(service)

	req, rec := userVotesRequest(0, `[1]`)
	handler.HandleUserVotes(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
