package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSearchUsecase struct {
	mock.Mock
}

func (m *MockSearchUsecase) Search(ctx context.Context, session *models.Session, query string) (*responses.Search, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Search), args.Error(1)
}

func searchRequest(rawQuery string, session *models.Session) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/api/v1/search?"+rawQuery, nil)
	if session == nil {
		return request
	}
	ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_KEY, session)
	return request.WithContext(ctx)
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) responses.ResponseDTO {
	t.Helper()
	var response responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestSearchController(t *testing.T) {
	session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: models.RoleCustomer}

	t.Run("Empty query is a 400 and never reaches the engine", func(t *testing.T) {
		mockSearch := new(MockSearchUsecase)
		controller := NewSearchController(zap.NewNop(), mockSearch)
		recorder := httptest.NewRecorder()

		controller.Search(recorder, searchRequest("q=", session))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeResponse(t, recorder)
		assert.False(t, response.Success)
		assert.Equal(t, constvars.ErrClientSearchQueryMissing, response.Message)
		mockSearch.AssertNotCalled(t, "Search")
	})

	t.Run("Whitespace-only query is a 400", func(t *testing.T) {
		mockSearch := new(MockSearchUsecase)
		controller := NewSearchController(zap.NewNop(), mockSearch)
		recorder := httptest.NewRecorder()

		controller.Search(recorder, searchRequest("q=%20%20%20", session))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		response := decodeResponse(t, recorder)
		assert.Equal(t, constvars.ErrClientSearchQueryMissing, response.Message)
		mockSearch.AssertNotCalled(t, "Search")
	})

	t.Run("Absent q parameter is a 400", func(t *testing.T) {
		mockSearch := new(MockSearchUsecase)
		controller := NewSearchController(zap.NewNop(), mockSearch)
		recorder := httptest.NewRecorder()

		controller.Search(recorder, searchRequest("", session))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockSearch.AssertNotCalled(t, "Search")
	})

	t.Run("Trimmed query reaches the engine", func(t *testing.T) {
		mockSearch := new(MockSearchUsecase)
		mockSearch.On("Search", mock.Anything, session, "nutrition").
			Return(&responses.Search{Query: "nutrition", Results: []responses.SearchResult{}}, nil)
		controller := NewSearchController(zap.NewNop(), mockSearch)
		recorder := httptest.NewRecorder()

		controller.Search(recorder, searchRequest("q=%20nutrition%20", session))

		assert.Equal(t, http.StatusOK, recorder.Code)
		response := decodeResponse(t, recorder)
		assert.True(t, response.Success)
		mockSearch.AssertExpectations(t)
	})

	t.Run("Missing session is a 401", func(t *testing.T) {
		mockSearch := new(MockSearchUsecase)
		controller := NewSearchController(zap.NewNop(), mockSearch)
		recorder := httptest.NewRecorder()

		controller.Search(recorder, searchRequest("q=nutrition", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockSearch.AssertNotCalled(t, "Search")
	})
}
