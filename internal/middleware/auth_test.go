package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Syed-faiz05/portfolio-backend/internal/services"
)

// protectedProbe records whether the wrapped handler ran. Rejections
// must short-circuit before the handler, so no side effect can occur
// on the protected resource.
type protectedProbe struct {
	called bool
}

func (p *protectedProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		w.WriteHeader(http.StatusOK)
	})
}

func doProtected(t *testing.T, authorization string) (*httptest.ResponseRecorder, *protectedProbe) {
	t.Helper()
	probe := &protectedProbe{}
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	Protect(probe.handler()).ServeHTTP(rr, req)
	return rr, probe
}

func messageBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["message"]
}

func TestProtect_NoHeader(t *testing.T) {
	services.InitAuth("middleware-test-secret")

	rr, probe := doProtected(t, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Not authorized, no token", messageBody(t, rr))
	assert.False(t, probe.called)
}

func TestProtect_NotBearer(t *testing.T) {
	services.InitAuth("middleware-test-secret")

	rr, probe := doProtected(t, "Token abcdef")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Not authorized, no token", messageBody(t, rr))
	assert.False(t, probe.called)
}

func TestProtect_GarbageToken(t *testing.T) {
	services.InitAuth("middleware-test-secret")

	rr, probe := doProtected(t, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Not authorized, token failed", messageBody(t, rr))
	assert.False(t, probe.called)
}

func TestProtect_ExpiredToken(t *testing.T) {
	services.InitAuth("middleware-test-secret")

	token, err := services.GenerateTokenWithDuration("65f1a2b3c4d5e6f708192a3b", -time.Minute)
	assert.NoError(t, err)

	rr, probe := doProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Not authorized, token failed", messageBody(t, rr))
	assert.False(t, probe.called)
}

func TestProtect_NonObjectIDSubject(t *testing.T) {
	services.InitAuth("middleware-test-secret")

	// Valid signature, but the subject can never resolve to an admin
	token, err := services.GenerateToken("not-an-object-id")
	assert.NoError(t, err)

	rr, probe := doProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Not authorized, token failed", messageBody(t, rr))
	assert.False(t, probe.called)
}
