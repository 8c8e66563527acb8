package impl

import (
	"context"
	"testing"
	"time"

	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	mockRepo "cromptch/internal/mocks/repository"
	mockService "cromptch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type authServiceFixtures struct {
	service   *authService
	tokenRepo *mockRepo.MockTokenRepository
	generator *mockService.MockTokenGenerator
}

func createTestAuthService(t *testing.T, idleTimeout time.Duration) authServiceFixtures {
	fx := authServiceFixtures{
		tokenRepo: mockRepo.NewMockTokenRepository(t),
		generator: mockService.NewMockTokenGenerator(t),
	}

	fx.service = &authService{
		tokenRepo:   fx.tokenRepo,
		generator:   fx.generator,
		idleTimeout: idleTimeout,
		now:         func() time.Time { return fixedNow },
		logger:      newDiscardLogger(),
	}

	return fx
}

func TestAuthService_IssueToken(t *testing.T) {
	fx := createTestAuthService(t, time.Hour)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.generator.EXPECT().Generate().Return("secret-token", nil)
	fx.tokenRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(tok *entity.Token) bool {
			return tok.Token == "secret-token" && tok.UserID == user.ID && tok.LastUsed.Equal(fixedNow)
		})).
		Return(nil)

	token, err := fx.service.IssueToken(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", token)
}

func TestAuthService_IssueToken_Failures(t *testing.T) {
	t.Run("generator error", func(t *testing.T) {
		fx := createTestAuthService(t, time.Hour)
		fx.generator.EXPECT().Generate().Return("", errors.New("entropy exhausted"))

		_, err := fx.service.IssueToken(context.Background(), &entity.User{ID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrTokenCreateFailed)
	})

	t.Run("store error", func(t *testing.T) {
		fx := createTestAuthService(t, time.Hour)
		ctx := context.Background()
		fx.generator.EXPECT().Generate().Return("tok", nil)
		fx.tokenRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicate)

		_, err := fx.service.IssueToken(ctx, &entity.User{ID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrTokenCreateFailed)
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindInternal))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name    string
		idle    time.Duration
		setup   func(fx authServiceFixtures, ctx context.Context)
		wantErr error
	}{
		{
			name: "fresh token is touched",
			idle: time.Hour,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").
					Return(&entity.TokenOwner{User: user, LastUsed: fixedNow.Add(-time.Minute)}, nil)
				fx.tokenRepo.EXPECT().Touch(ctx, "tok", fixedNow).Return(nil)
			},
		},
		{
			name: "zero idle timeout never expires",
			idle: 0,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").
					Return(&entity.TokenOwner{User: user, LastUsed: fixedNow.AddDate(-1, 0, 0)}, nil)
				fx.tokenRepo.EXPECT().Touch(ctx, "tok", fixedNow).Return(nil)
			},
		},
		{
			name: "unknown token",
			idle: time.Hour,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").Return(nil, repository.ErrTokenNotFound)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name: "lookup failure",
			idle: time.Hour,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").Return(nil, errors.New("db down"))
			},
			wantErr: domainerrors.ErrInternalError,
		},
		{
			name: "idle token is deleted",
			idle: time.Hour,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").
					Return(&entity.TokenOwner{User: user, LastUsed: fixedNow.Add(-2 * time.Hour)}, nil)
				fx.tokenRepo.EXPECT().Delete(ctx, "tok").Return(nil)
			},
			wantErr: domainerrors.ErrTokenExpired,
		},
		{
			name: "idle token delete failure still expires",
			idle: time.Hour,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").
					Return(&entity.TokenOwner{User: user, LastUsed: fixedNow.Add(-2 * time.Hour)}, nil)
				fx.tokenRepo.EXPECT().Delete(ctx, "tok").Return(errors.New("db down"))
			},
			wantErr: domainerrors.ErrTokenExpired,
		},
		{
			name: "token revoked concurrently",
			idle: time.Hour,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").
					Return(&entity.TokenOwner{User: user, LastUsed: fixedNow}, nil)
				fx.tokenRepo.EXPECT().Touch(ctx, "tok", fixedNow).Return(repository.ErrTokenNotFound)
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name: "touch failure",
			idle: time.Hour,
			setup: func(fx authServiceFixtures, ctx context.Context) {
				fx.tokenRepo.EXPECT().FindOwner(ctx, "tok").
					Return(&entity.TokenOwner{User: user, LastUsed: fixedNow}, nil)
				fx.tokenRepo.EXPECT().Touch(ctx, "tok", fixedNow).Return(errors.New("db down"))
			},
			wantErr: domainerrors.ErrTokenUpdateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, tt.idle)
			ctx := context.Background()
			tt.setup(fx, ctx)

			got, err := fx.service.Authenticate(ctx, "tok")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, user, got)
		})
	}
}

func TestAuthService_RevokeToken(t *testing.T) {
	fx := createTestAuthService(t, time.Hour)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().Delete(ctx, "tok").Return(nil).Once()
	require.NoError(t, fx.service.RevokeToken(ctx, "tok"))

	fx.tokenRepo.EXPECT().Delete(ctx, "tok").Return(repository.ErrTokenNotFound).Once()
	assert.ErrorIs(t, fx.service.RevokeToken(ctx, "tok"), domainerrors.ErrInvalidToken)
}

func TestNewAuthService_ReadsIdleTimeout(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.TokenIdleTimeout = 30 * time.Minute

	srv := NewAuthService(AuthServiceParams{
		TokenRepo: mockRepo.NewMockTokenRepository(t),
		Generator: mockService.NewMockTokenGenerator(t),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	svc, ok := srv.(*authService)
	require.True(t, ok)
	assert.Equal(t, 30*time.Minute, svc.idleTimeout)
}
