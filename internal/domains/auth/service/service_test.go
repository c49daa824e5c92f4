package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"luxeroom/config"
	"luxeroom/infras/jwt"
	"luxeroom/infras/otel/mocks"
	"luxeroom/internal/domains/auth/model/dto"
	"luxeroom/internal/domains/auth/service"
	"luxeroom/shared/failure"
)

func newTestJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "luxeroom-test"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestAuthService_Login(t *testing.T) {
	svc := service.New(newTestJWT(), mocks.NewOtel())

	tests := []struct {
		name    string
		req     dto.LoginRequest
		wantErr error
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Pin: "8291"},
		},
		{
			name:    "unknown pin",
			req:     dto.LoginRequest{Pin: "0000"},
			wantErr: failure.ErrInvalidPin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "s1", res.Staff.ID)
			assert.Equal(t, "Bestey", res.Staff.Name)
			assert.NotEmpty(t, res.AccessToken)
			assert.NotEmpty(t, res.RefreshToken)
			assert.Equal(t, "Bearer", res.TokenType)
			assert.Equal(t, int64(15*60), res.ExpiresIn)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	jwtService := newTestJWT()
	svc := service.New(jwtService, mocks.NewOtel())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Pin: "8291"})
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		res, err := svc.Refresh(context.Background(), dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)

		claims, err := jwtService.ValidateToken(res.AccessToken, jwt.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "s1", claims.StaffID)
		assert.Equal(t, "Bestey", claims.StaffName)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), dto.RefreshTokenRequest{RefreshToken: login.AccessToken})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), dto.RefreshTokenRequest{RefreshToken: "not-a-token"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
