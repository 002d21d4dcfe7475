package folio

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

type nowPlayingRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

type nowPlayingResponse struct {
	Playing   bool       `json:"playing"`
	Title     string     `json:"title,omitempty"`
	Artist    string     `json:"artist,omitempty"`
	URL       string     `json:"url,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// currentTrack returns the stored track unless it is older than
// NowPlayingTTL. Store errors are logged and render as "not playing".
func (a *App) currentTrack() *views.Track {
	t, err := a.Store.NowPlaying()
	if err != nil {
		a.Log.Warn().Err(err).Msg("now playing unavailable")
		return nil
	}
	if t == nil || time.Since(t.UpdatedAt) > a.Config.NowPlayingTTL {
		return nil
	}
	return t
}

// requireToken guards the now playing writes with a bearer token. With no
// token configured the endpoints do not exist.
func (a *App) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if a.Config.NowPlayingToken == "" {
			return echo.ErrNotFound
		}
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(a.Config.NowPlayingToken)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return next(c)
	}
}

func (a *App) handleGetNowPlaying(c echo.Context) error {
	t := a.currentTrack()
	if t == nil {
		return c.JSON(http.StatusOK, nowPlayingResponse{})
	}
	updated := t.UpdatedAt
	return c.JSON(http.StatusOK, nowPlayingResponse{
		Playing:   true,
		Title:     t.Title,
		Artist:    t.Artist,
		URL:       t.URL,
		UpdatedAt: &updated,
	})
}

func (a *App) handlePutNowPlaying(c echo.Context) error {
	var req nowPlayingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Artist = strings.TrimSpace(req.Artist)
	req.URL = strings.TrimSpace(req.URL)
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if req.URL != "" {
		u, err := url.Parse(req.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "url must be http or https")
		}
	}
	err := a.Store.SetNowPlaying(views.Track{
		Title:     req.Title,
		Artist:    req.Artist,
		URL:       req.URL,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	a.Log.Debug().Str("title", req.Title).Str("artist", req.Artist).Msg("now playing updated")
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleDeleteNowPlaying(c echo.Context) error {
	if err := a.Store.ClearNowPlaying(); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
