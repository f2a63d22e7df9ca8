package done

import (
	"context"
	"fmt"
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

// MockService реализует интерфейс done.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) MarkDone(ctx context.Context, id string) (*models.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Todo), args.Error(1)
}

func TestDoneHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "задача отмечена выполненной",
			id:   "todo-1",
			setupMock: func(m *MockService) {
				m.On("MarkDone", mock.Anything, "todo-1").
					Return(&models.Todo{ID: "todo-1", Completed: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Todo marked as done"`,
		},
		{
			name: "повторная отметка идемпотентна",
			id:   "todo-1",
			setupMock: func(m *MockService) {
				m.On("MarkDone", mock.Anything, "todo-1").
					Return(&models.Todo{ID: "todo-1", Completed: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"completed":true`,
		},
		{
			name: "задача не найдена",
			id:   "missing",
			setupMock: func(m *MockService) {
				m.On("MarkDone", mock.Anything, "missing").
					Return(nil, fmt.Errorf("services.todo.MarkDone: %w", models.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Todo not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/api/todos/"+tt.id+"/done", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
