package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Todo), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	todos := []*models.Todo{
		{ID: "todo-1", Title: "buy milk", UserID: "uid-1"},
		{ID: "todo-2", Title: "walk the dog", UserID: "uid-1"},
	}

	tests := []struct {
		name           string
		url            string
		urlParamUserID string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "задачи по владельцу из url",
			url:            "/api/todos/user/uid-1",
			urlParamUserID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "uid-1").Return(todos, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":2`,
		},
		{
			name: "задачи по владельцу из query",
			url:  "/api/todos/?userId=uid-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "uid-1").Return(todos, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Todos retrieved successfully"`,
		},
		{
			name: "все задачи без фильтра",
			url:  "/api/todos/",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "").Return([]*models.Todo{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
		{
			name: "ошибка сервиса",
			url:  "/api/todos/",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Error getting todos"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			if tt.urlParamUserID != "" {
				rctx := chi.NewRouteContext()
				rctx.URLParams.Add("userId", tt.urlParamUserID)
				req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
