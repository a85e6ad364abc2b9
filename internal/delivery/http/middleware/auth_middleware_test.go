package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yap/internal/domain/service"
	mockService "yap/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().
		Validate(service.TokenKindAccess, "good-token").
		Return(&service.Claims{UserID: userID, Kind: service.TokenKindAccess}, nil)

	m := NewAuthMiddleware(tokenSvc)

	c, _ := newTestContext(t, "Bearer good-token")

	var seenID uuid.UUID
	next := func(c echo.Context) error {
		seenID = UserID(c)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, userID, seenID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "")

	require.NoError(t, m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate(service.TokenKindAccess, "bad-token").
		Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext(t, "Bearer bad-token")

	require.NoError(t, m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireOnboarding_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().
		Validate(service.TokenKindOnboarding, "onboarding-token").
		Return(&service.Claims{UserID: userID, Kind: service.TokenKindOnboarding}, nil)

	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/onboarding/user", nil)
	req.AddCookie(&http.Cookie{Name: CookieOnboardingToken, Value: "onboarding-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID uuid.UUID
	require.NoError(t, m.RequireOnboarding(func(c echo.Context) error {
		seenID = UserID(c)

		return c.NoContent(http.StatusOK)
	})(c))
	assert.Equal(t, userID, seenID)
}

func TestAuthMiddleware_RequireOnboarding_MissingCookie(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/onboarding/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.RequireOnboarding(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserID_Unset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, uuid.Nil, UserID(c))
}
