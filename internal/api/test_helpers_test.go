package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pulse-social/pulse-api/internal/api/shared"
	"github.com/pulse-social/pulse-api/internal/config"
	"github.com/pulse-social/pulse-api/internal/domain"
)

// testPagination is the pagination config used by handler tests.
var testPagination = config.APIConfig{
	DefaultPageSize: 10,
	MaxPageSize:     100,
}

// newJSONRequest builds a request with the payload marshalled as the
// JSON body.
func newJSONRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authenticate attaches a user identity to the request context the way
// the authentication middleware does.
func authenticate(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// withURLParams attaches chi route parameters to the request context so
// handlers can be called without a full router.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	return req.WithContext(ctx)
}

// newStoredUser builds a user the way the store would hold it: hashed
// credentials only.
func newStoredUser(t *testing.T, id uuid.UUID, username string) *domain.User {
	t.Helper()
	return &domain.User{
		ID:             id,
		Username:       username,
		HashedPassword: "stored-hash",
	}
}

// decodeBody unmarshals the recorded response body into out.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(out))
}
