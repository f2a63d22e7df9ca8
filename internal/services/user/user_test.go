package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/magabrotheeeer/todo-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) FindUserByID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) FindUserByEmailOrPhone(ctx context.Context, email, phone string) (*models.User, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) FindOtherUserByEmailOrPhone(ctx context.Context, uid string, email, phone *string) (*models.User, error) {
	args := m.Called(ctx, uid, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, uid, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MakerMock struct{ mock.Mock }

func (m *MakerMock) GenerateToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MakerMock) ParseToken(tokenStr string) (*jwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.CustomClaims), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name: "success register",
			setupMocks: func(r *RepoMock) {
				r.On("FindUserByEmailOrPhone", mock.Anything, "a@x.com", "+70000000001").
					Return(nil, models.ErrNotFound).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					if u.UserName != "alice" || u.Email != "a@x.com" || u.Phone != "+70000000001" {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
				})).Return("uid-1", nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "email or phone already taken",
			setupMocks: func(r *RepoMock) {
				r.On("FindUserByEmailOrPhone", mock.Anything, "a@x.com", "+70000000001").
					Return(&models.User{UID: "uid-9"}, nil).Once()
			},
			wantErr: models.ErrUserExists,
		},
		{
			name: "storage failure",
			setupMocks: func(r *RepoMock) {
				r.On("FindUserByEmailOrPhone", mock.Anything, "a@x.com", "+70000000001").
					Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			maker := new(MakerMock)
			svc := NewUserService(repo, maker, newNoopLogger())

			tt.setupMocks(repo)

			info, err := svc.Register(context.Background(), "alice", "a@x.com", "+70000000001", "secret123")
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, models.ErrUserExists) {
					assert.ErrorIs(t, err, models.ErrUserExists)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "uid-1", info.UID)
				assert.Equal(t, "alice", info.UserName)
				assert.Equal(t, "a@x.com", info.Email)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &models.User{
		UID:          "uid-1",
		UserName:     "alice",
		Email:        "a@x.com",
		Phone:        "+70000000001",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock, m *MakerMock)
		email      string
		password   string
		wantToken  string
		wantErr    error
	}{
		{
			name: "success login",
			setupMocks: func(r *RepoMock, m *MakerMock) {
				r.On("FindUserByEmail", mock.Anything, "a@x.com").Return(stored, nil).Once()
				m.On("GenerateToken", "uid-1", "a@x.com").Return("jwt-token", nil).Once()
			},
			email:     "a@x.com",
			password:  "secret123",
			wantToken: "jwt-token",
		},
		{
			name: "unknown email",
			setupMocks: func(r *RepoMock, _ *MakerMock) {
				r.On("FindUserByEmail", mock.Anything, "b@x.com").Return(nil, models.ErrNotFound).Once()
			},
			email:    "b@x.com",
			password: "secret123",
			wantErr:  models.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setupMocks: func(r *RepoMock, _ *MakerMock) {
				r.On("FindUserByEmail", mock.Anything, "a@x.com").Return(stored, nil).Once()
			},
			email:    "a@x.com",
			password: "wrongpass",
			wantErr:  models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			maker := new(MakerMock)
			svc := NewUserService(repo, maker, newNoopLogger())

			tt.setupMocks(repo, maker)

			token, info, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, "uid-1", info.UID)
			}

			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	repo := new(RepoMock)
	maker := new(MakerMock)
	svc := NewUserService(repo, maker, newNoopLogger())

	repo.On("FindUserByID", mock.Anything, "uid-1").Return(&models.User{
		UID:          "uid-1",
		UserName:     "alice",
		Email:        "a@x.com",
		Phone:        "+70000000001",
		PasswordHash: "hash",
	}, nil).Once()

	info, err := svc.Get(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", info.UserName)

	repo.On("FindUserByID", mock.Anything, "uid-2").Return(nil, models.ErrNotFound).Once()

	_, err = svc.Get(context.Background(), "uid-2")
	assert.ErrorIs(t, err, models.ErrNotFound)

	repo.AssertExpectations(t)
}

func TestUserService_Update(t *testing.T) {
	newEmail := "new@x.com"
	newPassword := "newsecret"
	newName := "alice2"

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		req        models.DummyUserUpdate
		wantErr    error
	}{
		{
			name: "success update with new password",
			setupMocks: func(r *RepoMock) {
				r.On("FindOtherUserByEmailOrPhone", mock.Anything, "uid-1", &newEmail, (*string)(nil)).
					Return(nil, models.ErrNotFound).Once()
				r.On("UpdateUser", mock.Anything, "uid-1", mock.MatchedBy(func(upd models.UserUpdate) bool {
					if upd.Email == nil || *upd.Email != newEmail || upd.PasswordHash == nil {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(*upd.PasswordHash), []byte(newPassword)) == nil
				})).Return(&models.User{UID: "uid-1", UserName: "alice", Email: newEmail}, nil).Once()
			},
			req: models.DummyUserUpdate{Email: &newEmail, Password: &newPassword},
		},
		{
			name: "email taken by another user",
			setupMocks: func(r *RepoMock) {
				r.On("FindOtherUserByEmailOrPhone", mock.Anything, "uid-1", &newEmail, (*string)(nil)).
					Return(&models.User{UID: "uid-2"}, nil).Once()
			},
			req:     models.DummyUserUpdate{Email: &newEmail},
			wantErr: models.ErrUserExists,
		},
		{
			name: "name only update skips uniqueness check",
			setupMocks: func(r *RepoMock) {
				r.On("UpdateUser", mock.Anything, "uid-1", mock.MatchedBy(func(upd models.UserUpdate) bool {
					return upd.UserName != nil && *upd.UserName == newName &&
						upd.Email == nil && upd.Phone == nil && upd.PasswordHash == nil
				})).Return(&models.User{UID: "uid-1", UserName: newName}, nil).Once()
			},
			req: models.DummyUserUpdate{UserName: &newName},
		},
		{
			name: "user not found",
			setupMocks: func(r *RepoMock) {
				r.On("UpdateUser", mock.Anything, "uid-1", mock.Anything).
					Return(nil, models.ErrNotFound).Once()
			},
			req:     models.DummyUserUpdate{UserName: &newName},
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			maker := new(MakerMock)
			svc := NewUserService(repo, maker, newNoopLogger())

			tt.setupMocks(repo)

			info, err := svc.Update(context.Background(), "uid-1", tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "uid-1", info.UID)
			}

			repo.AssertExpectations(t)
		})
	}
}
