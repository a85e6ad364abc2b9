package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yap/config"
	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/validator"
	"yap/internal/domain/entity"
	mockUsecase "yap/internal/mocks/usecase"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Cookie: &config.CookieConfig{Secure: true},
	}
	cfg.Frontend.AppURL = "https://app.example.com"
	cfg.Frontend.OnboardingURL = "https://app.example.com/onboarding"
	cfg.Frontend.ErrorURL = "https://app.example.com/error"

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	h := &AuthHandler{cfg: testConfig(), logger: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "REFRESH_TOKEN_INVALID")
}

func TestOAuthHandler_Callback_StateMismatch(t *testing.T) {
	h := &OAuthHandler{cfg: testConfig(), logger: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=tampered&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieOAuthState, Value: "original"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com/error", rec.Header().Get(echo.HeaderLocation))
}

func TestOAuthHandler_Callback_MissingCode(t *testing.T) {
	h := &OAuthHandler{cfg: testConfig(), logger: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=original", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieOAuthState, Value: "original"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com/error", rec.Header().Get(echo.HeaderLocation))
}

func TestPostHandler_GetFeed_InvalidCursor(t *testing.T) {
	h := &PostHandler{logger: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/feed?before=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandler_GetFeed_InvalidLimit(t *testing.T) {
	h := &PostHandler{logger: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/feed?limit=ten", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandler_GetPost_InvalidID(t *testing.T) {
	h := &PostHandler{logger: testLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetPost(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewAuthCookie_ClearsWhenEmpty(t *testing.T) {
	cfg := &config.CookieConfig{Domain: "example.com", Secure: true}

	cookie := newAuthCookie(cfg, middleware.CookieRefreshToken, "", 0)

	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)

	return &AuthHandler{uc: uc, cfg: testConfig(), logger: testLogger()}, uc
}

func signupContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Logout_MissingCookie(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthHandler_Logout_RevocationFailurePropagates(t *testing.T) {
	h, uc := newAuthHandlerForTest(t)
	uc.EXPECT().
		Logout(mock.Anything, "stored-token").
		Return(errors.New("database unavailable"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieRefreshToken, Value: "stored-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.Error(t, h.Logout(c))
	// The cookie must survive a failed revocation; the session is still live.
	assert.Empty(t, rec.Header().Values(echo.HeaderSetCookie))
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h, uc := newAuthHandlerForTest(t)
	uc.EXPECT().
		Logout(mock.Anything, "stored-token").
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieRefreshToken, Value: "stored-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Header().Values(echo.HeaderSetCookie)
	require.Len(t, cookies, 1)
	assert.Contains(t, cookies[0], middleware.CookieRefreshToken+"=")
	assert.Contains(t, cookies[0], "Max-Age=0")
}

func TestAuthHandler_Signup_UsernameBounds(t *testing.T) {
	valid := func(username string) string {
		return `{"email":"a@example.com","username":"` + username + `","password":"Secure123"}`
	}

	accepted := []string{
		"abcde",
		"under_score_name",
		strings.Repeat("a", 32),
	}
	for _, username := range accepted {
		t.Run("accepts "+username, func(t *testing.T) {
			h, uc := newAuthHandlerForTest(t)
			uc.EXPECT().
				Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
					return in.Username == username
				})).
				Return(&usecase.SignupOutput{User: &entity.User{ID: uuid.New()}}, nil)

			c, rec := signupContext(t, valid(username))
			require.NoError(t, h.Signup(c))
			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}

	rejected := []string{
		"abcd",
		"ab!",
		"has space5",
		"has-hyphen",
		strings.Repeat("a", 33),
	}
	for _, username := range rejected {
		t.Run("rejects "+username, func(t *testing.T) {
			h, _ := newAuthHandlerForTest(t)

			c, rec := signupContext(t, valid(username))
			require.NoError(t, h.Signup(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestOAuthHandler_Onboard_InvalidUsername(t *testing.T) {
	h := &OAuthHandler{cfg: testConfig(), logger: testLogger()}

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/onboarding", strings.NewReader(`{"username":"bad name"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Onboard(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
