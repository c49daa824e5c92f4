package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luxeroom/infras/jwt"
	"luxeroom/infras/otel"
	"luxeroom/internal/domains/auth/model/dto"
	"luxeroom/internal/domains/staff/model"
	"luxeroom/shared/constant"
	"luxeroom/shared/failure"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	jwt  jwt.JWT
	otel otel.Otel
}

func New(jwtService jwt.JWT, ot otel.Otel) Auth {
	return &serviceImpl{
		jwt:  jwtService,
		otel: ot,
	}
}

// Login matches the PIN against the staff roster and issues a token pair.
// A miss is indistinguishable from a wrong PIN on purpose: the response
// never reveals whether any roster entry was close.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, ok := model.FindByPin(model.Directory(), req.Pin)
	if !ok {
		log.Warn().Msg("login attempt with unknown PIN")

		return res, failure.ErrInvalidPin
	}

	pair, err := s.jwt.GenerateTokenPair(staff.ID, staff.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.FromModel(staff, pair)

	log.Info().Str("staff", staff.Name).Msg("staff logged in")

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthenticated("invalid refresh token") //nolint:wrapcheck
	}

	res.FromPair(pair)

	return res, nil
}
