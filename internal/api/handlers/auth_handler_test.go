package handlers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adayportal/backend/internal/api/middleware"
	"github.com/adayportal/backend/internal/utils"
)

type fakeAuthService struct {
	token  string
	active map[string]bool
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{token: "token-1", active: map[string]bool{}}
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (string, error) {
	if username != "admin" || password != "sifre123" {
		return "", utils.E(utils.CodeUnauthorized, "AuthService.Login", "invalid credentials", nil)
	}
	f.active[f.token] = true
	return f.token, nil
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	delete(f.active, token)
	return nil
}

func (f *fakeAuthService) IsLoggedIn(_ context.Context, token string) (bool, error) {
	return f.active[token], nil
}

func newAuthRouter(t *testing.T, auth *fakeAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("login.html").Parse(`login {{.Error}}`)))

	h := NewAuthHandler(auth, time.Hour)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	admin := r.Group("/")
	admin.Use(middleware.AdminSession(auth))
	admin.GET("/admin", func(c *gin.Context) { c.String(http.StatusOK, "listing") })
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func Test_Login_SetsSessionCookie(t *testing.T) {
	auth := newFakeAuthService()
	r := newAuthRouter(t, auth)

	rec := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"sifre123"}}, nil)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func Test_Login_BadCredentials(t *testing.T) {
	r := newAuthRouter(t, newFakeAuthService())

	rec := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"wrong"}}, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func Test_AdminGuard(t *testing.T) {
	auth := newFakeAuthService()
	r := newAuthRouter(t, auth)

	// no session: redirected to login
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// log in, then the listing is reachable
	postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"sifre123"}}, nil)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "token-1"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "listing", rec.Body.String())
}

func Test_Logout_DestroysSession(t *testing.T) {
	auth := newFakeAuthService()
	r := newAuthRouter(t, auth)

	postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"sifre123"}}, nil)

	cookie := &http.Cookie{Name: middleware.SessionCookie, Value: "token-1"}
	rec := postForm(r, "/logout", url.Values{}, cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// the server-side flag is gone; the old cookie no longer passes the guard
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
