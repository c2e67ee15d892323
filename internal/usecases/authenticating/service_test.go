package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/pkg/apiErrors"
)

func newAuthService(secret string) Authenticator {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}})
}

func TestService_Enabled(t *testing.T) {
	assert.False(t, newAuthService("").Enabled())
	assert.True(t, newAuthService("segredo").Enabled())
}

func TestService_ValidateToken(t *testing.T) {
	service := newAuthService("segredo")

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		wantRole string
		wantErr  error
		wantCode string
	}{
		{
			name: "Token válido de operador",
			token: func(t *testing.T) string {
				token, err := service.IssueToken("ana", domain.RoleOperator, time.Hour)
				require.NoError(t, err)
				return token
			},
			wantRole: domain.RoleOperator,
		},
		{
			name: "Token expirado",
			token: func(t *testing.T) string {
				token, err := service.IssueToken("ana", domain.RoleViewer, -time.Minute)
				require.NoError(t, err)
				return token
			},
			wantErr:  ErrExpiredToken,
			wantCode: apiErrors.ErrExpiredToken,
		},
		{
			name: "Assinado com outro segredo",
			token: func(t *testing.T) string {
				token, err := newAuthService("outro").IssueToken("ana", domain.RoleViewer, time.Hour)
				require.NoError(t, err)
				return token
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "Texto qualquer",
			token:    func(t *testing.T) string { return "nao-e-um-jwt" },
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, claims.Role)
			assert.Equal(t, "ana", claims.Subject)
		})
	}
}

func TestService_IssueToken_UnknownRole(t *testing.T) {
	_, err := newAuthService("segredo").IssueToken("ana", "admin", time.Hour)
	assert.Error(t, err)
}
