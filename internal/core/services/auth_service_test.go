package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
	"github.com/mandikhata/trade_ledger_app/internal/platform/config"
	"github.com/mandikhata/trade_ledger_app/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg *config.Config
}

func (suite *AuthServiceTestSuite) SetupTest() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "trade-ledger-test",
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	service := services.NewAuthService(suite.cfg)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.Token)
	suite.Greater(resp.ExpiresAt, time.Now().Unix())

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("admin", claims.Subject)
	suite.Equal("trade-ledger-test", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	service := services.NewAuthService(suite.cfg)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongUsername() {
	service := services.NewAuthService(suite.cfg)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Username: "intruder",
		Password: "correct-horse",
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	// Same failure as a wrong password so the endpoint does not leak
	// which credential was wrong.
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthServiceTestSuite) TestLogin_NotConfigured() {
	suite.cfg.AdminPasswordHash = ""
	service := services.NewAuthService(suite.cfg)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
