package routes

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/Alitedigitals2007/student-home-ng/models"
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	registerUser(t, app, "ada@unn.edu.ng")

	form := url.Values{
		"full_name":    {"Other Person"},
		"phone_number": {"08087654321"},
		"email":        {"ada@unn.edu.ng"},
		"password":     {"different1"},
	}
	rec := doForm(app, http.MethodPost, "/auth/register", form, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var count int64
	storage.DB.Model(&models.User{}).Where("email = ?", "ada@unn.edu.ng").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{
		"full_name":    {"Ada Obi"},
		"phone_number": {"08012345678"},
		"email":        {"not-an-email"},
		"password":     {"secret123"},
	}
	rec := doForm(app, http.MethodPost, "/auth/register", form, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "ada@unn.edu.ng")

	form := url.Values{"email": {"ada@unn.edu.ng"}, "password": {"wrongpass"}}
	rec := doForm(app, http.MethodPost, "/auth/login", form, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "ada@unn.edu.ng")

	wrongPass := doForm(app, http.MethodPost, "/auth/login",
		url.Values{"email": {"ada@unn.edu.ng"}, "password": {"wrongpass"}}, nil)
	noUser := doForm(app, http.MethodPost, "/auth/login",
		url.Values{"email": {"ghost@unn.edu.ng"}, "password": {"whatever1"}}, nil)

	assert.Equal(t, wrongPass.Code, noUser.Code)
	assert.Equal(t, wrongPass.Body.String(), noUser.Body.String())
}

func TestLoginEstablishesSessionForRightUser(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "ada@unn.edu.ng")
	registerUser(t, app, "bayo@unn.edu.ng")

	form := url.Values{"email": {"bayo@unn.edu.ng"}, "password": {"secret123"}}
	rec := doForm(app, http.MethodPost, "/auth/login", form, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	cookie := sessionCookie(t, rec)

	var bayo models.User
	require.NoError(t, storage.DB.Where("email = ?", "bayo@unn.edu.ng").First(&bayo).Error)

	userID, ok := storage.Sessions.Lookup(context.Background(), cookie.Value)
	require.True(t, ok)
	assert.Equal(t, bayo.ID, userID)
}

func TestLogoutDestroysSession(t *testing.T) {
	app := newTestApp(t)
	cookie := registerUser(t, app, "ada@unn.edu.ng")

	rec := doGet(app, "/logout", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	_, ok := storage.Sessions.Lookup(context.Background(), cookie.Value)
	assert.False(t, ok)

	after := doGet(app, "/dashboard", cookie)
	assert.Equal(t, http.StatusFound, after.Code)
	assert.Equal(t, "/login", after.Header().Get("Location"))
}

func TestDashboardRedirectsAnonymous(t *testing.T) {
	app := newTestApp(t)

	rec := doGet(app, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDashboardRendersForAuthenticated(t *testing.T) {
	app := newTestApp(t)
	cookie := registerUser(t, app, "ada@unn.edu.ng")

	rec := doGet(app, "/dashboard", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Obi")
}

func TestHealthzReportsOK(t *testing.T) {
	app := newTestApp(t)

	rec := doGet(app, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
