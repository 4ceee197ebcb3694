package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/user"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/jwt"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, email string, googleID string) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
	tokenRepo  RefreshTokenRepository
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, tokenRepo RefreshTokenRepository) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the account exists
		return TokenResponse{}, ErrInvalidCredentials
	}

	if u.PasswordHash == nil {
		return TokenResponse{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// LoginWithGoogle signs in a user previously linked to a verified Google
// account. Unknown Google accounts are rejected; provisioning happens through
// regular employee onboarding.
func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, email string, googleID string) (TokenResponse, error) {
	u, err := s.userRepo.LinkGoogleAccount(ctx, googleID, email)
	if err != nil {
		return TokenResponse{}, ErrUserNotFound
	}

	return s.issueTokens(ctx, u)
}

func (s *authServiceImpl) RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return AccessTokenResponse{}, err
	}

	stored, err := s.tokenRepo.Get(ctx, req.RefreshToken)
	if err != nil {
		return AccessTokenResponse{}, ErrInvalidToken
	}
	if stored.RevokedAt != nil {
		return AccessTokenResponse{}, ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return AccessTokenResponse{}, ErrTokenExpired
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return AccessTokenResponse{}, ErrUserNotFound
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return AccessTokenResponse{}, err
	}

	return AccessTokenResponse{
		AccessToken:     accessToken,
		AccessExpiresAt: accessExp,
		TokenType:       "Bearer",
	}, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return s.tokenRepo.Revoke(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User) (TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return TokenResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenResponse{}, err
	}

	if err := s.tokenRepo.Store(ctx, u.ID, refreshToken, time.Unix(refreshExp, 0)); err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
		TokenType:        "Bearer",
	}, nil
}
