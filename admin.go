package folio

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.view(), false, CsrfToken(c)))
	}
	drafts, err := a.Cache.Drafts()
	if err != nil {
		return err
	}
	subscribers, err := a.Store.CountSubscribers()
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.view(), drafts, subscribers, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if a.Config.AdminPassword == "" {
		return echo.ErrNotFound
	}
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		a.Log.Info().Str("ip", ip).Msg("admin login")
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	a.loginLimiter.Record(ip)
	a.Log.Warn().Str("ip", ip).Msg("admin login failed")
	return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.view(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// handleReload drops the post cache so edits on disk show up immediately.
func (a *App) handleReload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/admin")
}
