package movie

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movierama/internal/core/movies"
	"movierama/internal/core/users"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) CreateMovie(ctx context.Context, userID int64, req movies.CreateMovieRequest) (*movies.Movie, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Movie), args.Error(1)
}

func (m *mockMovieService) GetMovie(ctx context.Context, id int64) (*movies.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Movie), args.Error(1)
}

func (m *mockMovieService) ListMovies(ctx context.Context, pageable movies.Pageable) (*movies.Page, error) {
	args := m.Called(ctx, pageable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Page), args.Error(1)
}

func (m *mockMovieService) ListMoviesByUser(ctx context.Context, username string, pageable movies.Pageable) (*movies.Page, error) {
	args := m.Called(ctx, username, pageable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Page), args.Error(1)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, userID, movieID int64, req movies.UpdateMovieRequest) (*movies.Movie, error) {
	args := m.Called(ctx, userID, movieID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Movie), args.Error(1)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, userID, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func serveList(service movies.Service, target string) *httptest.ResponseRecorder {
	handler := NewListMoviesHandler(service)
	r := chi.NewRouter()
	r.Get("/api/v1/movies", handler.HandleListMovies)
	r.Get("/api/v1/movies/user/{username}", handler.HandleListMoviesByUser)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleListMovies_DefaultPaging(t *testing.T) {
	service := new(mockMovieService)

	content := []*movies.Movie{
		{ID: 1, Title: "Alien", User: users.Summary{ID: 2, Username: "ripley"}, LikeCount: 3},
	}
	page := movies.NewPage(content, movies.NewPageable(0, movies.DefaultPageSize, movies.ParseSort("")), 1)

	service.On("ListMovies", mock.Anything, mock.MatchedBy(func(p movies.Pageable) bool {
		return p.PageNumber == 0 && p.PageSize == movies.DefaultPageSize
	})).Return(page, nil)

	rec := serveList(service, "/api/v1/movies")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, float64(1), body["totalElements"])
	assert.Equal(t, float64(1), body["totalPages"])
	assert.Equal(t, true, body["last"])
	assert.Equal(t, true, body["first"])
	assert.Len(t, body["content"], 1)

	service.AssertExpectations(t)
}

func TestHandleListMovies_QueryParams(t *testing.T) {
	service := new(mockMovieService)

	service.On("ListMovies", mock.Anything, mock.MatchedBy(func(p movies.Pageable) bool {
		return p.PageNumber == 2 && p.PageSize == 5 && p.Offset == 10
	})).Return(movies.NewPage(nil, movies.NewPageable(2, 5, movies.ParseSort("likeCount,desc")), 0), nil)

	rec := serveList(service, "/api/v1/movies?page=2&size=5&sort=likeCount,desc")
	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestHandleListMovies_BogusParamsFallBack(t *testing.T) {
	service := new(mockMovieService)

	service.On("ListMovies", mock.Anything, mock.MatchedBy(func(p movies.Pageable) bool {
		return p.PageNumber == 0 && p.PageSize == movies.DefaultPageSize
	})).Return(movies.NewPage(nil, movies.NewPageable(0, movies.DefaultPageSize, movies.ParseSort("")), 0), nil)

	rec := serveList(service, "/api/v1/movies?page=-3&size=zero")
	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestHandleListMoviesByUser(t *testing.T) {
	service := new(mockMovieService)

	service.On("ListMoviesByUser", mock.Anything, "ripley", mock.Anything).
		Return(movies.NewPage(nil, movies.NewPageable(0, movies.DefaultPageSize, movies.ParseSort("")), 0), nil)

	rec := serveList(service, "/api/v1/movies/user/ripley")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body["empty"])
	assert.Len(t, body["content"], 0)

	service.AssertExpectations(t)
}
