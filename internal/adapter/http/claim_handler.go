package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"cmcs-backend/internal/adapter/middleware"
	claimDomain "cmcs-backend/internal/domain/claim"
	documentDomain "cmcs-backend/internal/domain/document"
	"cmcs-backend/internal/usecase/claim"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct{ uc *claim.Usecase }

func NewClaimHandler(uc *claim.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

// Multipart form: the supporting document travels alongside the fields
// under the "supporting_document" part.
type submitClaimReq struct {
	LecturerID    string  `form:"lecturer_id"    validate:"required"`
	FirstName     string  `form:"first_name"     validate:"required"`
	LastName      string  `form:"last_name"      validate:"required"`
	PeriodStart   string  `form:"period_start"   validate:"required,datetime=2006-01-02"`
	PeriodEnd     string  `form:"period_end"     validate:"required,datetime=2006-01-02"`
	HoursWorked   float64 `form:"hours_worked"   validate:"gte=0"`
	RatePerHour   float64 `form:"rate_per_hour"  validate:"gte=0"`
	OvertimeHours string  `form:"overtime_hours"`
	OvertimeRate  string  `form:"overtime_rate"`
	Description   string  `form:"description"`
}

func (h *ClaimHandler) SubmitClaim(c echo.Context) error {
	var req submitClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	start, _ := time.Parse("2006-01-02", req.PeriodStart)
	end, _ := time.Parse("2006-01-02", req.PeriodEnd)

	in := claim.SubmitClaimInput{
		LecturerID:  req.LecturerID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PeriodStart: start,
		PeriodEnd:   end,
		HoursWorked: req.HoursWorked,
		RatePerHour: req.RatePerHour,
		Description: req.Description,
	}
	if req.OvertimeHours != "" {
		v, err := strconv.ParseFloat(req.OvertimeHours, 64)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "OvertimeHours", Message: "must be a number"}},
			})
		}
		in.OvertimeHours = &v
	}
	if req.OvertimeRate != "" {
		v, err := strconv.ParseFloat(req.OvertimeRate, 64)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "OvertimeRate", Message: "must be a number"}},
			})
		}
		in.OvertimeRate = &v
	}

	file, err := uploadFromForm(c, "supporting_document")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read uploaded file"})
	}

	dto, err := h.uc.Submit(c.Request().Context(), middleware.UserID(c), in, file)
	if err != nil {
		return submitError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/claims/%d", dto.ID))
	return c.JSON(http.StatusCreated, dto)
}

func uploadFromForm(c echo.Context, field string) (*claim.UploadInput, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		// No multipart body at all also means "no file".
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &claim.UploadInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func submitError(c echo.Context, err error) error {
	var ruleErr *claim.RuleError
	switch {
	case errors.Is(err, claim.ErrNoSubmitter):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.As(err, &ruleErr):
		details := make([]FieldError, 0, len(ruleErr.Violations))
		for _, v := range ruleErr.Violations {
			details = append(details, FieldError{Field: v.Field, Message: v.Message})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
	case errors.Is(err, claim.ErrInvalidFileType), errors.Is(err, claim.ErrInvalidMIMEType):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not submit claim"})
	}
}

func (h *ClaimHandler) ListClaims(c echo.Context) error {
	dtos, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list claims"})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ClaimHandler) GetClaim(c echo.Context) error {
	id, ok := pathUint(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, claimDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "claim not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load claim"})
	}
	return c.JSON(http.StatusOK, dto)
}

// ClaimHistory lists the caller's own claims, newest first, with
// document metadata.
func (h *ClaimHandler) ClaimHistory(c echo.Context) error {
	dtos, err := h.uc.History(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load claim history"})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ClaimHandler) ApproveClaim(c echo.Context) error {
	id, ok := pathUint(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim id"})
	}
	if _, err := h.uc.Approve(c.Request().Context(), id); err != nil {
		return reviewError(c, err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Claim has been approved"})
}

func (h *ClaimHandler) RejectClaim(c echo.Context) error {
	id, ok := pathUint(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim id"})
	}
	if _, err := h.uc.Reject(c.Request().Context(), id); err != nil {
		return reviewError(c, err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "Your claim has been rejected - contact HR"})
}

func reviewError(c echo.Context, err error) error {
	if errors.Is(err, claimDomain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, StatusResponse{Success: false, Message: "Claim not found"})
	}
	return c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Could not update claim"})
}

type updateStatusReq struct {
	ClaimID   uint   `json:"claim_id" validate:"required"`
	NewStatus string `json:"new_status"`
}

// UpdateStatus is the generic transition endpoint; the status set is
// closed to Pending/Approved/Rejected.
func (h *ClaimHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.UpdateStatus(c.Request().Context(), req.ClaimID, req.NewStatus)
	if err != nil {
		switch {
		case errors.Is(err, claim.ErrEmptyStatus), errors.Is(err, claimDomain.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, StatusResponse{Success: false, Message: err.Error()})
		case errors.Is(err, claimDomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, StatusResponse{Success: false, Message: "Claim not found"})
		default:
			return c.JSON(http.StatusInternalServerError, StatusResponse{Success: false, Message: "Could not update claim"})
		}
	}
	return c.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Message: fmt.Sprintf("Claim status updated to %s", dto.Status),
	})
}

// DownloadClaimDocument streams the first document attached to a claim,
// matching the original download-by-claim behavior.
func (h *ClaimHandler) DownloadClaimDocument(c echo.Context) error {
	id, ok := pathUint(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim id"})
	}
	doc, err := h.uc.DocumentByClaimID(c.Request().Context(), id)
	if err != nil {
		return documentError(c, err)
	}
	return streamDocument(c, doc)
}

func (h *ClaimHandler) DownloadDocument(c echo.Context) error {
	id, ok := pathUint(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid document id"})
	}
	doc, err := h.uc.Document(c.Request().Context(), id)
	if err != nil {
		return documentError(c, err)
	}
	return streamDocument(c, doc)
}

func documentError(c echo.Context, err error) error {
	if errors.Is(err, documentDomain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "document not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load document"})
}

func streamDocument(c echo.Context, doc *documentDomain.Document) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, doc.FileName))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}
