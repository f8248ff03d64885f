package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "blogpilot/internal/delivery/http/helpers"
	"blogpilot/internal/domain"
)

type WorkflowController struct {
	Logger  *slog.Logger
	Service domain.WorkflowService
}

func NewWorkflowController(logger *slog.Logger, svc domain.WorkflowService) *WorkflowController {
	return &WorkflowController{
		Logger:  logger,
		Service: svc,
	}
}

// DailyTasks godoc
// @Summary Run today's scheduled phase
// @Description Maps the current local weekday to a phase (Monday: initial notification, Wednesday: reminder, Thursday: auto-confirm) and runs it over all active customers. Other days report a no-op. Requires the cron Bearer secret.
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the workflow report"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cron/daily-tasks [get]
func (c *WorkflowController) DailyTasks(w http.ResponseWriter, r *http.Request) {
	report, err := c.Service.RunScheduled(r.Context(), time.Now())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "scheduled run failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, report)
}

// GenerateDrafts godoc
// @Summary Generate this week's drafts
// @Description Runs draft generation for all active customers. Idempotent per customer and week: customers that already have drafts are skipped. Requires the cron Bearer secret.
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the workflow report"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /cron/generate-drafts [post]
func (c *WorkflowController) GenerateDrafts(w http.ResponseWriter, r *http.Request) {
	report, err := c.Service.RunGeneration(r.Context(), time.Now())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "generation run failed", "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, report)
}
