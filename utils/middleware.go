package utils

import (
	"github.com/Alitedigitals2007/student-home-ng/storage"
	"github.com/kataras/iris/v12"
)

// SessionCookie is the opaque token the browser holds; the session store maps
// it to a user id.
const SessionCookie = "shng_session"

// RequireAuth gates a route behind an authenticated session. Anonymous or
// stale sessions are redirected to /login rather than given a 401.
func RequireAuth(ctx iris.Context) {
	token := ctx.GetCookie(SessionCookie)
	if token == "" {
		ctx.Redirect("/login", iris.StatusFound)
		return
	}

	userID, ok := storage.Sessions.Lookup(ctx.Request().Context(), token)
	if !ok {
		ctx.RemoveCookie(SessionCookie)
		ctx.Redirect("/login", iris.StatusFound)
		return
	}

	ctx.Values().Set("userID", userID)
	ctx.Next()
}

// CurrentUserID returns the acting user id set by RequireAuth, 0 when the
// request is anonymous.
func CurrentUserID(ctx iris.Context) uint {
	if v := ctx.Values().Get("userID"); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// StartSession issues a fresh token for the user and sets the cookie.
func StartSession(ctx iris.Context, userID uint) error {
	token, err := storage.Sessions.Create(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	ctx.SetCookieKV(SessionCookie, token,
		iris.CookiePath("/"),
		iris.CookieHTTPOnly(true),
		iris.CookieExpires(storage.SessionTTL),
	)
	return nil
}

// EndSession destroys the server-held session, if any, and clears the cookie.
func EndSession(ctx iris.Context) {
	if token := ctx.GetCookie(SessionCookie); token != "" {
		storage.Sessions.Destroy(ctx.Request().Context(), token)
	}
	ctx.RemoveCookie(SessionCookie)
}
