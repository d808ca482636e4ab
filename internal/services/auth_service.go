package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/andrewbantly/leasepeek-server/internal/config"
	"github.com/andrewbantly/leasepeek-server/internal/dtos"
	"github.com/andrewbantly/leasepeek-server/internal/models"
	"github.com/andrewbantly/leasepeek-server/internal/repositories"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

const tokenIssuer = "leasepeek"

// TokenPair is the access/refresh pair returned on register and login.
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthService interface
type AuthService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.User, TokenPair, error)

	// ValidateAccessToken verifies signature, expiry and token_type and
	// returns the subject's user ID and username.
	ValidateAccessToken(tokenString string) (uuid.UUID, string, error)
}

type authService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !utils.ValidateEmailFormat(email) {
		return nil, TokenPair{}, utils.ErrInvalidEmail
	}
	if !utils.ValidatePasswordStrength(req.Password) {
		return nil, TokenPair{}, utils.ErrWeakPassword
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, TokenPair{}, utils.ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, TokenPair{}, fmt.Errorf("creating user: %w", err)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, TokenPair{}, utils.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

func (s *authService) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims["token_type"] != "access" {
		return uuid.Nil, "", jwt.ErrTokenInvalidClaims
	}

	sub, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", jwt.ErrTokenInvalidSubject
	}
	username, _ := claims["username"].(string)
	return userID, username, nil
}

/* ---------- internals ---------- */

func (s *authService) issueTokens(user *models.User) (TokenPair, error) {
	access, err := s.signToken(user, "access", s.cfg.AccessTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("signing access token: %w", err)
	}
	refresh, err := s.signToken(user, "refresh", s.cfg.RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("signing refresh token: %w", err)
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *authService) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":        tokenIssuer,
		"user_id":    user.ID.String(),
		"username":   user.Username,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"jti":        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
