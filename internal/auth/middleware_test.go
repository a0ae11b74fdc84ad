package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newProtectedEcho(svc *TokenService) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		claims, err := CurrentUser(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, claims.UserID)
	}, Middleware(svc))
	return e
}

func TestMiddleware(t *testing.T) {
	svc := NewTokenService("test-secret")
	userID := uuid.New().String()

	valid, err := svc.Generate(userID, "a@x.com")
	assert.NoError(t, err)

	forged, err := NewTokenService("other-secret").Generate(userID, "a@x.com")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "not a bearer scheme", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "malformed token", header: "Bearer not-a-token", expectedStatus: http.StatusUnauthorized},
		{name: "forged signature", header: "Bearer " + forged, expectedStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newProtectedEcho(svc)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				// The resolved identity reaches the handler.
				assert.Equal(t, userID, rec.Body.String())
			}
		})
	}
}

func TestCurrentUser_OutsideMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	claims, err := CurrentUser(c)
	assert.Nil(t, claims)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
