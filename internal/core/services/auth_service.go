package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/mandikhata/trade_ledger_app/internal/platform/config"
	"github.com/mandikhata/trade_ledger_app/internal/utils"
)

// authService checks the configured operator credentials and issues JWTs.
// The same ErrForbidden comes back for a wrong username and a wrong
// password, so the endpoint does not leak which one failed.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogError(ctx, apperrors.ErrForbidden, "login rejected: no admin credentials configured")
		return nil, fmt.Errorf("%w: login is not configured", apperrors.ErrForbidden)
	}
	if req.Username != s.cfg.AdminUsername || !utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash) {
		s.LogInfo(ctx, "login rejected", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	token, expiresAt, err := utils.GenerateJWT(req.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.LogInfo(ctx, "login succeeded", slog.String("username", req.Username))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}
