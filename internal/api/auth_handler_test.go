package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-social/pulse-api/internal/mocks"
	"github.com/pulse-social/pulse-api/internal/service/auth"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Token: "test-token"}
	passwordVerifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}

	handler := NewAuthHandler(userStore, jwtService, passwordVerifier, passwordVerifier, nil)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "new_user",
				"password": "password1234567",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate username",
			payload: map[string]interface{}{
				"username": "new_user",
				"password": "password1234567",
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "username too short",
			payload: map[string]interface{}{
				"username": "ab",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"username": "another_user",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "another_user",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, "POST", "/api/v1/users/", tt.payload)
			recorder := httptest.NewRecorder()

			handler.Register(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp RegisterResponse
				decodeBody(t, recorder, &resp)
				assert.NotEqual(t, uuid.Nil, resp.ID)
				assert.Equal(t, "new_user", resp.Username)

				// The stored user carries a hash, never the plaintext.
				stored := userStore.Users["new_user"]
				require.NotNil(t, stored)
				assert.Empty(t, stored.Password)
				assert.NotEmpty(t, stored.HashedPassword)
			}
		})
	}
}

func TestCreateToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	makeHandler := func(passwordOK bool) *AuthHandler {
		userStore := mocks.NewMockUserStore()
		user := newStoredUser(t, userID, "known_user")
		userStore.Users[user.Username] = user

		jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
		verifier := &mocks.MockPasswordVerifier{ShouldSucceed: passwordOK}
		return NewAuthHandler(userStore, jwtService, verifier, verifier, nil)
	}

	tests := []struct {
		name       string
		passwordOK bool
		payload    map[string]interface{}
		wantStatus int
		wantTokens bool
	}{
		{
			name:       "valid credentials",
			passwordOK: true,
			payload: map[string]interface{}{
				"username": "known_user",
				"password": "password123",
			},
			wantStatus: http.StatusOK,
			wantTokens: true,
		},
		{
			name:       "wrong password",
			passwordOK: false,
			payload: map[string]interface{}{
				"username": "known_user",
				"password": "wrong",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown username",
			passwordOK: true,
			payload: map[string]interface{}{
				"username": "nobody",
				"password": "password123",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			passwordOK: true,
			payload:    map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := makeHandler(tt.passwordOK)

			req := newJSONRequest(t, "POST", "/api/v1/jwt/create/", tt.payload)
			recorder := httptest.NewRecorder()

			handler.CreateToken(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantTokens {
				var resp TokenPairResponse
				decodeBody(t, recorder, &resp)
				assert.Equal(t, "access-token", resp.Access)
				assert.Equal(t, "refresh-token", resp.Refresh)
			}
		})
	}
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		validateErr error
		wantStatus  int
	}{
		{
			name:       "valid refresh token",
			payload:    map[string]interface{}{"refresh": "good-refresh"},
			wantStatus: http.StatusOK,
		},
		{
			name:        "expired refresh token",
			payload:     map[string]interface{}{"refresh": "stale"},
			validateErr: auth.ErrExpiredRefreshToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "access token passed as refresh",
			payload:     map[string]interface{}{"refresh": "access-token"},
			validateErr: auth.ErrWrongTokenType,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:       "missing refresh",
			payload:    map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				Token:        "new-access",
				RefreshToken: "new-refresh",
				ValidateRefreshTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
					if tt.validateErr != nil {
						return nil, tt.validateErr
					}
					return &auth.Claims{UserID: userID, TokenType: "refresh"}, nil
				},
			}
			verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
			handler := NewAuthHandler(mocks.NewMockUserStore(), jwtService, verifier, verifier, nil)

			req := newJSONRequest(t, "POST", "/api/v1/jwt/refresh/", tt.payload)
			recorder := httptest.NewRecorder()

			handler.RefreshToken(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp TokenPairResponse
				decodeBody(t, recorder, &resp)
				assert.Equal(t, "new-access", resp.Access)
				assert.Equal(t, "new-refresh", resp.Refresh)
			}
		})
	}
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		accessErr  error
		refreshErr error
		wantStatus int
	}{
		{
			name:       "valid access token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid refresh token",
			accessErr:  auth.ErrWrongTokenType,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid token",
			accessErr:  auth.ErrInvalidToken,
			refreshErr: auth.ErrInvalidRefreshToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				Claims:             &auth.Claims{UserID: uuid.New()},
				ValidateErr:        tt.accessErr,
				ValidateRefreshErr: tt.refreshErr,
			}
			verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
			handler := NewAuthHandler(mocks.NewMockUserStore(), jwtService, verifier, verifier, nil)

			req := newJSONRequest(t, "POST", "/api/v1/jwt/verify/", map[string]interface{}{
				"token": "some-token",
			})
			recorder := httptest.NewRecorder()

			handler.VerifyToken(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
