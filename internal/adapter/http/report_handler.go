package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"cmcs-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

type reportReq struct {
	LecturerID string `json:"lecturer_id" validate:"required,hex32"`
	StartDate  string `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date"    validate:"required,datetime=2006-01-02"`
}

// bindReportInput binds and validates the shared report payload. On
// failure it has already written the error response.
func bindReportInput(c echo.Context) (report.Input, bool) {
	var req reportReq
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		return report.Input{}, false
	}
	if err := c.Validate(&req); err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
		return report.Input{}, false
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	return report.Input{LecturerID: req.LecturerID, StartDate: start, EndDate: end}, true
}

// GenerateReport renders the claim report PDF for one lecturer's date
// range and streams it as a download.
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	in, ok := bindReportInput(c)
	if !ok {
		return nil
	}

	file, err := h.uc.Generate(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, report.ErrNoClaimsInRange) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not generate report"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Name))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}

// ValidateReport probes whether the range would yield a report; the UI
// calls this before offering the download.
func (h *ReportHandler) ValidateReport(c echo.Context) error {
	in, ok := bindReportInput(c)
	if !ok {
		return nil
	}
	exists, err := h.uc.ClaimsExist(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not validate report range"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"exists": exists})
}
