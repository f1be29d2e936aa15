package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emp-portal/internal/auth"
	autherrors "emp-portal/internal/auth/errors"
	"emp-portal/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	loginFn func(ctx context.Context, userID, password, role string) (auth.LoginResult, error)
}

func (f *fakeService) Login(ctx context.Context, userID, password, role string) (auth.LoginResult, error) {
	return f.loginFn(ctx, userID, password, role)
}

func pagesDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"login.html":              "<html>login</html>",
		"manager-dashboard.html":  "<html>manager dashboard</html>",
		"employee-dashboard.html": "<html>employee dashboard</html>",
	} {
		err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644)
		assert.NoError(t, err)
	}
	return dir
}

func postLogin(form url.Values) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return w, c
}

func loginForm(role string) url.Values {
	form := url.Values{}
	form.Set("UserId", "M1")
	form.Set("Password", "plain")
	form.Set("Role", role)
	return form
}

func TestHandler_LoginPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := auth.NewHandler(&fakeService{}, pagesDir(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h.LoginPage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login")
}

func TestHandler_Login_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeService{
		loginFn: func(ctx context.Context, userID, password, role string) (auth.LoginResult, error) {
			assert.Equal(t, "M1", userID)
			assert.Equal(t, auth.RoleManager, role)
			return auth.LoginResult{
				Outcome:     auth.OutcomeSuccess,
				Dashboard:   "manager-dashboard.html",
				AccessToken: "token-123",
			}, nil
		},
	}
	h := auth.NewHandler(svc, pagesDir(t))

	w, c := postLogin(loginForm(auth.RoleManager))
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "manager dashboard")

	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == "access_token" {
			found = true
			assert.Equal(t, "token-123", ck.Value)
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "access_token cookie not set")
}

func TestHandler_Login_UserNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeService{
		loginFn: func(ctx context.Context, userID, password, role string) (auth.LoginResult, error) {
			return auth.LoginResult{Outcome: auth.OutcomeUserNotFound}, nil
		},
	}
	h := auth.NewHandler(svc, pagesDir(t))

	w, c := postLogin(loginForm(auth.RoleManager))
	h.Login(c)

	// Failed credentials answer 200, not an error status.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Login failed. User ID not found.</h1>", w.Body.String())
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeService{
		loginFn: func(ctx context.Context, userID, password, role string) (auth.LoginResult, error) {
			return auth.LoginResult{Outcome: auth.OutcomeWrongPassword}, nil
		},
	}
	h := auth.NewHandler(svc, pagesDir(t))

	w, c := postLogin(loginForm(auth.RoleManager))
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Login failed. Incorrect password.</h1>", w.Body.String())
}

func TestHandler_Login_InvalidRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeService{
		loginFn: func(ctx context.Context, userID, password, role string) (auth.LoginResult, error) {
			return auth.LoginResult{}, autherrors.ErrInvalidRole
		},
	}
	h := auth.NewHandler(svc, pagesDir(t))

	w, c := postLogin(loginForm("Admin"))
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "<h1>Invalid Role Selected</h1>", w.Body.String())
}

func TestHandler_Login_StoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	svc := &fakeService{
		loginFn: func(ctx context.Context, userID, password, role string) (auth.LoginResult, error) {
			return auth.LoginResult{}, apperror.Store(assert.AnError)
		},
	}
	h := auth.NewHandler(svc, pagesDir(t))

	w, c := postLogin(loginForm(auth.RoleManager))
	h.Login(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "<h1>An error occurred. Please try again later.</h1>", w.Body.String())
}
