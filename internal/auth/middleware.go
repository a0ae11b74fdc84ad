package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// contextKey is where the verified claims live on the echo context.
const contextKey = "user"

// Middleware returns the bearer-token middleware guarding protected routes.
// It reads the Authorization header, verifies the token through svc and
// attaches the resolved claims to the request context. Missing, malformed,
// forged or expired tokens are rejected with 401 before any handler runs.
func Middleware(svc *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  contextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return svc.Validate(tokenString)
		},
		// Every failure is a plain 401; the default handler answers 400 for
		// a missing header, which would leak why the check failed.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	})
}

// CurrentUser returns the claims attached by Middleware. Handlers behind the
// middleware can rely on it; anywhere else it fails with 401.
func CurrentUser(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(contextKey).(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	}
	return claims, nil
}
