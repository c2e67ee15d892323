package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
)

type Authenticator interface {
	Enabled() bool
	IssueToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

// NewService cria o validador de tokens. Sem AUTH_SECRET a autenticação fica desligada.
func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
	}
}

func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

func (s *Service) IssueToken(subject, role string, ttl time.Duration) (string, error) {
	if role != domain.RoleViewer && role != domain.RoleOperator {
		return "", fmt.Errorf("papel desconhecido: %s", role)
	}

	now := time.Now()
	claims := &domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
