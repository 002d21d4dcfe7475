package folio

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

// maxEmailLength is the longest address RFC 5321 allows.
const maxEmailLength = 254

// validEmail accepts a bare address: no display name, no angle brackets.
func validEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".")
}

// newsletterPage loads the optional intro copy from pages/newsletter.md.
func (a *App) newsletterPage() (*content.Page, error) {
	page, err := a.Loader.LoadPage("newsletter")
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *App) renderNewsletter(c echo.Context, code int, form views.NewsletterForm) error {
	page, err := a.newsletterPage()
	if err != nil {
		return err
	}
	return RenderStatus(c, code, views.Newsletter(a.view(), a.currentTrack(), page, form, CsrfToken(c)))
}

func (a *App) handleNewsletter(c echo.Context) error {
	return a.renderNewsletter(c, http.StatusOK, views.NewsletterForm{})
}

func (a *App) handleSubscribe(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	form := views.NewsletterForm{Email: email}

	if !a.signupLimiter.Allow(c.RealIP()) {
		a.Metrics.Signups.WithLabelValues("limited").Inc()
		form.Message = "Too many attempts. Try again in a minute."
		return a.renderNewsletter(c, http.StatusTooManyRequests, form)
	}
	if !validEmail(email) {
		a.Metrics.Signups.WithLabelValues("invalid").Inc()
		form.Message = "Please enter a valid email address."
		return a.renderNewsletter(c, http.StatusBadRequest, form)
	}

	_, created, err := a.Store.AddSubscriber(email)
	if err != nil {
		return err
	}
	form.Success = true
	if created {
		a.Metrics.Signups.WithLabelValues("subscribed").Inc()
		a.Log.Info().Msg("newsletter subscriber added")
		form.Message = "Thanks for subscribing!"
	} else {
		a.Metrics.Signups.WithLabelValues("duplicate").Inc()
		form.Message = "You're already subscribed."
	}
	return a.renderNewsletter(c, http.StatusOK, form)
}

func (a *App) handleUnsubscribe(c echo.Context) error {
	err := a.Store.RemoveSubscriber(c.Param("token"))
	switch {
	case errors.Is(err, ErrNotFound):
		return RenderStatus(c, http.StatusNotFound, views.Unsubscribed(a.view(), a.currentTrack(), false))
	case err != nil:
		return err
	}
	a.Log.Info().Msg("newsletter subscriber removed")
	return Render(c, views.Unsubscribed(a.view(), a.currentTrack(), true))
}
