package routes

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/Alitedigitals2007/student-home-ng/utils"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with foreign keys
// enforced and installs it as the global handle.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, storage.Migrate(db))
	storage.DB = db
	return db
}

// newTestApp wires the full route table against a fresh database, an
// in-memory session store, and a throwaway upload dir.
func newTestApp(t *testing.T) *iris.Application {
	t.Helper()

	newTestDB(t)
	storage.Sessions = storage.NewMemorySessionStore(storage.SessionTTL)
	storage.UploadDir = t.TempDir()

	app := iris.New()
	app.Validator = validator.New()
	app.RegisterView(iris.HTML("../views", ".html"))

	app.Get("/login", LoginPage)
	app.Get("/register", RegisterPage)
	app.Get("/logout", Logout)
	app.Post("/auth/register", Register)
	app.Post("/auth/login", Login)

	app.Get("/dashboard", utils.RequireAuth, Dashboard)

	app.Get("/post-room", utils.RequireAuth, PostRoomForm)
	app.Post("/post-room", utils.RequireAuth, CreateListing)
	app.Get("/edit-room/{id:uint}", utils.RequireAuth, EditRoomForm)
	app.Post("/update-room/{id:uint}", utils.RequireAuth, UpdateListing)
	app.Post("/update-status/{id:uint}", utils.RequireAuth, UpdateListingStatus)
	app.Post("/delete-room/{id:uint}", utils.RequireAuth, DeleteListing)

	app.Get("/post-roommate", utils.RequireAuth, PostRoommateForm)
	app.Post("/post-roommate", utils.RequireAuth, CreateRoommateAd)
	app.Post("/delete-roommate-ad/{id:uint}", utils.RequireAuth, DeleteRoommateAd)
	app.Post("/toggle-roommate-status/{id:uint}", utils.RequireAuth, ToggleRoommateStatus)

	app.Post("/post-request", utils.RequireAuth, CreateHousingRequest)
	app.Post("/delete-request/{id:uint}", utils.RequireAuth, DeleteHousingRequest)

	app.Get("/", Home)
	app.Get("/listings", PublicListings)
	app.Get("/roommates", PublicRoommates)
	app.Get("/requests", RequestBoard)
	app.Get("/room/{id:uint}", RoomDetails)
	app.Get("/roommate/{id:uint}", RoommateDetails)
	app.Get("/healthz", Healthz)

	require.NoError(t, app.Build())
	return app
}

func doForm(app *iris.Application, method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func doGet(app *iris.Application, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

// doMultipart posts fields plus fake image files under the "images" field.
func doMultipart(t *testing.T, app *iris.Application, path string, fields url.Values, imageNames []string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, vals := range fields {
		for _, v := range vals {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	for _, name := range imageNames {
		fw, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// registerUser signs up a user through the real endpoint and returns their
// session cookie.
func registerUser(t *testing.T, app *iris.Application, email string) *http.Cookie {
	t.Helper()
	form := url.Values{
		"full_name":    {"Ada Obi"},
		"phone_number": {"08012345678"},
		"email":        {email},
		"password":     {"secret123"},
	}
	rec := doForm(app, http.MethodPost, "/auth/register", form, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))
	return sessionCookie(t, rec)
}
