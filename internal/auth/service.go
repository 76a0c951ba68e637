package auth

import (
	"log/slog"

	profileDatamodel "github.com/adiwarna/maintenance-management/internal/core/datamodel/profile"
)

type RepositoryAPI interface {
	GetByEmail(email string) (*profileDatamodel.Profile, error)
	GetByID(id string) (*profileDatamodel.Profile, error)
}

// Service is the concrete identity provider: it yields (userId, email) plus
// the profile role for the current session.
type Service struct {
	repo   RepositoryAPI
	tokens TokenGeneratorAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	record, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("authentication failed: profile lookup", "email", dto.Email, "error", err)
		return AuthTokens{}, ErrInvalidCredentials
	}

	if !record.IsActive {
		s.logger.Warn("authentication failed: profile inactive", "profile_id", record.ID)
		return AuthTokens{}, ErrUserInactive
	}

	if err := VerifyPassword(record.PasswordHash, dto.Password); err != nil {
		s.logger.Warn("authentication failed: password mismatch", "profile_id", record.ID)
		return AuthTokens{}, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(record.ID, record.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(record.ID, record.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	s.logger.Info("profile authenticated", "profile_id", record.ID)

	return AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	record, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return AuthTokens{}, ErrInvalidToken
	}
	if !record.IsActive {
		return AuthTokens{}, ErrUserInactive
	}

	accessToken, err := s.tokens.GenerateAccessToken(record.ID, record.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	newRefreshToken, err := s.tokens.GenerateRefreshToken(record.ID, record.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

// GetUser loads the context identity for a validated token subject.
func (s *Service) GetUser(userID string) (*User, error) {
	record, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !record.IsActive {
		return nil, ErrUserInactive
	}

	return &User{
		ID:       record.ID,
		Email:    record.Email,
		FullName: record.FullName,
		Role:     Role(record.Role),
	}, nil
}
