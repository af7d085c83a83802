package services

import (
	"context"

	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// AuthSvcFacade issues bearer tokens for the configured operator
// credentials. There is no user store; the single operator login comes
// from configuration.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
