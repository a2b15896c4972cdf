package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/workday"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkingDayHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
	SetFixedHolidays(w http.ResponseWriter, r *http.Request)
	SetAlternateDays(w http.ResponseWriter, r *http.Request)
	PreviewMonth(w http.ResponseWriter, r *http.Request)
	ListCustomHolidays(w http.ResponseWriter, r *http.Request)
	AddCustomHoliday(w http.ResponseWriter, r *http.Request)
	RemoveCustomHoliday(w http.ResponseWriter, r *http.Request)
}

type workingDayHandlerImpl struct {
	configService workday.ConfigService
	clock         Clock
}

func NewWorkingDayHandler(configService workday.ConfigService, clock Clock) WorkingDayHandler {
	return &workingDayHandlerImpl{
		configService: configService,
		clock:         clock,
	}
}

// GetConfig implements WorkingDayHandler.
func (h *workingDayHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.GetConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

// UpdateConfig implements WorkingDayHandler.
func (h *workingDayHandlerImpl) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req workday.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.configService.UpdateConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Working day configuration replaced", "by", currentEmployeeID(r))
	response.SuccessWithMessage(w, "Working day configuration updated", cfg)
}

// SetFixedHolidays implements WorkingDayHandler.
func (h *workingDayHandlerImpl) SetFixedHolidays(w http.ResponseWriter, r *http.Request) {
	var req workday.SetFixedHolidaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.configService.SetFixedHolidays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fixed holidays updated", cfg)
}

// SetAlternateDays implements WorkingDayHandler.
func (h *workingDayHandlerImpl) SetAlternateDays(w http.ResponseWriter, r *http.Request) {
	var req workday.SetAlternateDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.configService.SetAlternateDays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Alternate days updated", cfg)
}

// PreviewMonth implements WorkingDayHandler.
func (h *workingDayHandlerImpl) PreviewMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.clock.monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	preview, err := h.configService.PreviewMonth(r.Context(), workday.PreviewQuery{Year: year, Month: month})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview)
}

// ListCustomHolidays implements WorkingDayHandler.
func (h *workingDayHandlerImpl) ListCustomHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.configService.GetCustomHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string][]string{"customHolidays": holidays})
}

// AddCustomHoliday implements WorkingDayHandler.
func (h *workingDayHandlerImpl) AddCustomHoliday(w http.ResponseWriter, r *http.Request) {
	var req workday.CustomHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.configService.AddCustomHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Custom holiday added", cfg)
}

// RemoveCustomHoliday implements WorkingDayHandler.
func (h *workingDayHandlerImpl) RemoveCustomHoliday(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.RemoveCustomHoliday(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Custom holiday removed", cfg)
}
