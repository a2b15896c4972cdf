package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyStatus(w http.ResponseWriter, r *http.Request)
	GetMyStats(w http.ResponseWriter, r *http.Request)
	GetEmployeeRecords(w http.ResponseWriter, r *http.Request)
	GetEmployeeStats(w http.ResponseWriter, r *http.Request)
	GetEmployeeHours(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	clock             Clock
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clock Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		clock:             clock,
	}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req := attendance.ClockRequest{EmployeeID: currentEmployeeID(r)}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req := attendance.ClockRequest{EmployeeID: currentEmployeeID(r)}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// GetMyStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.GetStatus(r.Context(), currentEmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// GetMyStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	h.monthlyStats(w, r, currentEmployeeID(r))
}

// GetEmployeeRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.GetEmployeeRecords(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetEmployeeStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	h.monthlyStats(w, r, chi.URLParam(r, "employeeID"))
}

// GetEmployeeHours implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeHours(w http.ResponseWriter, r *http.Request) {
	query := attendance.DailyHoursQuery{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Date:       r.URL.Query().Get("date"),
	}
	if query.Date == "" {
		query.Date = h.clock.today().Format("2006-01-02")
	}

	hours, err := h.attendanceService.GetDailyHours(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

func (h *attendanceHandlerImpl) monthlyStats(w http.ResponseWriter, r *http.Request, employeeID string) {
	year, month, err := h.clock.monthFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.attendanceService.GetMonthlyStats(r.Context(), attendance.MonthQuery{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
