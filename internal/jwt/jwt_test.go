package jwt_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/cookiecash/trading-wallet/internal/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := jwt.New("secret", time.Hour)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.GetClaims(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWT_GetClaims_WrongSecret(t *testing.T) {
	token, err := jwt.New("secret", time.Hour).Generate(context.Background(), uuid.New(), "user")
	require.NoError(t, err)

	_, err = jwt.New("other-secret", time.Hour).GetClaims(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_GetClaims_Expired(t *testing.T) {
	j := jwt.New("secret", -time.Minute)
	token, err := j.Generate(context.Background(), uuid.New(), "user")
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_Validate(t *testing.T) {
	j := jwt.New("secret", time.Hour)
	token, err := j.Generate(context.Background(), uuid.New(), "user")
	require.NoError(t, err)

	assert.NoError(t, j.Validate(context.Background(), token))
	assert.Error(t, j.Validate(context.Background(), "not-a-token"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := jwt.New("secret", time.Hour)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "bearer token",
			header:    "Bearer abc123",
			wantToken: "abc123",
		},
		{
			name:      "lowercase scheme",
			header:    "bearer abc123",
			wantToken: "abc123",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc123",
			wantErr: true,
		},
		{
			name:    "no token",
			header:  "Bearer",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
