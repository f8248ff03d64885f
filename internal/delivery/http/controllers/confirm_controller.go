package controllers

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"blogpilot/internal/domain"
)

//go:embed templates/*.html
var confirmFS embed.FS

var confirmTemplates = template.Must(template.ParseFS(confirmFS, "templates/*.html"))

// ConfirmController serves the public confirmation pages. The link token is
// the only credential; nothing here requires a session or login.
type ConfirmController struct {
	Logger  *slog.Logger
	Service domain.ConfirmPageService
}

func NewConfirmController(logger *slog.Logger, svc domain.ConfirmPageService) *ConfirmController {
	return &ConfirmController{
		Logger:  logger,
		Service: svc,
	}
}

type confirmPageData struct {
	CustomerName string
	Token        string
	Drafts       []*domain.Draft
}

// Show renders the selection page for GET /confirm/{token}. An unknown token
// renders the invalid page with 404 and no hint about why.
func (c *ConfirmController) Show(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	page, err := c.Service.Load(r.Context(), token, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.render(w, http.StatusNotFound, "confirm_invalid.html", nil)
			return
		}
		c.Logger.ErrorContext(r.Context(), "load confirm page failed", "err", err)
		c.render(w, http.StatusInternalServerError, "confirm_error.html", nil)
		return
	}
	if page.AlreadyConfirmed {
		c.render(w, http.StatusOK, "confirm_done.html", page.CustomerName)
		return
	}
	c.render(w, http.StatusOK, "confirm_select.html", confirmPageData{
		CustomerName: page.CustomerName,
		Token:        token,
		Drafts:       page.Drafts,
	})
}

// Select handles the form submission from the selection page.
func (c *ConfirmController) Select(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if err := r.ParseForm(); err != nil {
		c.render(w, http.StatusBadRequest, "confirm_error.html", nil)
		return
	}
	draftID := r.PostFormValue("draft_id")
	memo := r.PostFormValue("memo")
	if draftID == "" {
		c.render(w, http.StatusBadRequest, "confirm_error.html", nil)
		return
	}

	_, err := c.Service.Select(r.Context(), token, draftID, memo, time.Now())
	switch {
	case err == nil:
		c.render(w, http.StatusOK, "confirm_done.html", "")
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		c.render(w, http.StatusOK, "confirm_done.html", "")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrDraftNotPending):
		// Foreign or stale drafts look the same as a bad link.
		c.render(w, http.StatusNotFound, "confirm_invalid.html", nil)
	default:
		c.Logger.ErrorContext(r.Context(), "record confirmation failed", "err", err)
		c.render(w, http.StatusInternalServerError, "confirm_error.html", nil)
	}
}

func (c *ConfirmController) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := confirmTemplates.ExecuteTemplate(w, name, data); err != nil {
		c.Logger.Error("render confirm template failed", "template", name, "err", err)
	}
}
