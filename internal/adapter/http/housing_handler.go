package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/adapter/middleware"
	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
	domain "egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/infrastructure/storage"
	docuc "egov-portal-backend/internal/usecase/document"
	"egov-portal-backend/internal/usecase/housing"
)

type HousingHandler struct {
	uc    *housing.Usecase
	docs  *docuc.Usecase
	blobs storage.Store
}

func NewHousingHandler(uc *housing.Usecase, docs *docuc.Usecase, blobs storage.Store) *HousingHandler {
	return &HousingHandler{uc: uc, docs: docs, blobs: blobs}
}

func requestMeta(c echo.Context) history.Meta {
	return history.Meta{IP: c.RealIP(), UserAgent: c.Request().UserAgent()}
}

type createHousingReq struct {
	ApplicantName    string  `json:"applicant_name"    validate:"required"`
	ApplicantEmail   string  `json:"applicant_email"   validate:"required,email"`
	ApplicantPhone   string  `json:"applicant_phone"   validate:"required"`
	ApplicantAddress string  `json:"applicant_address" validate:"required"`
	HouseholdSize    int     `json:"household_size"    validate:"required,gte=1"`
	MonthlyIncome    float64 `json:"monthly_income"    validate:"required,gt=0,dec2"`
	CurrentDwelling  string  `json:"current_dwelling"  validate:"required"`
}

func (h *HousingHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req createHousingReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), actor, housing.CreateInput(req))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusCreated, "application drafted", dto)
}

func (h *HousingHandler) List(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	f := domain.ListFilter{Status: domain.Status(c.QueryParam("status"))}
	if v := c.QueryParam("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}
	list, err := h.uc.List(c.Request().Context(), actor, f)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "applications", list)
}

func (h *HousingHandler) Get(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	dto, err := h.uc.Get(c.Request().Context(), actor, c.Param("application_no"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "application", dto)
}

func (h *HousingHandler) Submit(c echo.Context) error {
	return h.transition(c, "application submitted", func(actor user.Actor, no string) (*housing.ApplicationDTO, error) {
		return h.uc.Submit(c.Request().Context(), actor, no)
	})
}

func (h *HousingHandler) StartReview(c echo.Context) error {
	return h.transition(c, "review started", func(actor user.Actor, no string) (*housing.ApplicationDTO, error) {
		return h.uc.StartReview(c.Request().Context(), actor, no)
	})
}

type scheduleInspectionReq struct {
	InspectorID   uint64    `json:"inspector_id"   validate:"required"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
}

func (h *HousingHandler) ScheduleInspection(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req scheduleInspectionReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.ScheduleInspection(c.Request().Context(), actor, c.Param("application_no"),
		housing.ScheduleInspectionInput(req))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "inspection scheduled", dto)
}

type completeInspectionReq struct {
	Findings string `json:"findings" validate:"required"`
}

func (h *HousingHandler) CompleteInspection(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req completeInspectionReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.CompleteInspection(c.Request().Context(), actor, c.Param("application_no"), req.Findings)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "inspection completed", dto)
}

func (h *HousingHandler) RequestInfo(c echo.Context) error {
	return h.remarked(c, "additional information requested", func(actor user.Actor, no, remarks string) (*housing.ApplicationDTO, error) {
		return h.uc.RequestInfo(c.Request().Context(), actor, no, remarks)
	})
}

func (h *HousingHandler) ResumeReview(c echo.Context) error {
	return h.transition(c, "review resumed", func(actor user.Actor, no string) (*housing.ApplicationDTO, error) {
		return h.uc.ResumeReview(c.Request().Context(), actor, no)
	})
}

func (h *HousingHandler) Hold(c echo.Context) error {
	return h.remarked(c, "application on hold", func(actor user.Actor, no, remarks string) (*housing.ApplicationDTO, error) {
		return h.uc.Hold(c.Request().Context(), actor, no, remarks)
	})
}

func (h *HousingHandler) Approve(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.Approve(c.Request().Context(), actor, c.Param("application_no"), req.Note, requestMeta(c))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "application approved", dto)
}

func (h *HousingHandler) Reject(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.Reject(c.Request().Context(), actor, c.Param("application_no"), req.Reason, requestMeta(c))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "application rejected", dto)
}

type withdrawReq struct {
	Reason string `json:"reason"`
}

func (h *HousingHandler) Withdraw(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req withdrawReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	dto, err := h.uc.Withdraw(c.Request().Context(), actor, c.Param("application_no"), req.Reason, requestMeta(c))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "application withdrawn", dto)
}

type appealReq struct {
	Grounds string `json:"grounds" validate:"required"`
}

func (h *HousingHandler) Appeal(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req appealReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.Appeal(c.Request().Context(), actor, c.Param("application_no"), req.Grounds)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "appeal lodged", dto)
}

func (h *HousingHandler) ReopenAppeal(c echo.Context) error {
	return h.transition(c, "appeal reopened for review", func(actor user.Actor, no string) (*housing.ApplicationDTO, error) {
		return h.uc.ReopenAppeal(c.Request().Context(), actor, no)
	})
}

func (h *HousingHandler) IssueOffer(c echo.Context) error {
	return h.transition(c, "offer issued", func(actor user.Actor, no string) (*housing.ApplicationDTO, error) {
		return h.uc.IssueOffer(c.Request().Context(), actor, no)
	})
}

type assignBeneficiaryReq struct {
	UnitIdentifier string `json:"unit_identifier" validate:"required"`
}

func (h *HousingHandler) AssignBeneficiary(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req assignBeneficiaryReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.AssignBeneficiary(c.Request().Context(), actor, c.Param("application_no"), req.UnitIdentifier)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "beneficiary assigned", dto)
}

func (h *HousingHandler) Close(c echo.Context) error {
	return h.transition(c, "application closed", func(actor user.Actor, no string) (*housing.ApplicationDTO, error) {
		return h.uc.Close(c.Request().Context(), actor, no)
	})
}

type endOccupancyReq struct {
	Status string `json:"status" validate:"required,oneof=ended terminated transferred"`
	Reason string `json:"reason" validate:"required"`
}

func (h *HousingHandler) EndOccupancy(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req endOccupancyReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	err := h.uc.EndOccupancy(c.Request().Context(), actor, c.Param("application_no"),
		domain.OccupancyStatus(req.Status), req.Reason)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "occupancy updated", nil)
}

func (h *HousingHandler) UploadDocument(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	meta, err := saveUpload(c, h.blobs)
	if err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}
	dto, err := h.docs.Upload(c.Request().Context(), actor, document.OwnerHousing, c.Param("application_no"), docuc.UploadInput{
		DocType: c.FormValue("doc_type"),
		File:    *meta,
	})
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusCreated, "document uploaded", dto)
}

func (h *HousingHandler) VerifyDocument(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req verifyDocumentReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.docs.Verify(c.Request().Context(), actor, document.OwnerHousing,
		c.Param("application_no"), c.Param("doc_id"), docuc.Decision(req.Decision), req.Remarks)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "document reviewed", dto)
}

func (h *HousingHandler) ReuploadDocument(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	meta, err := saveUpload(c, h.blobs)
	if err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}
	dto, err := h.docs.Reupload(c.Request().Context(), actor, document.OwnerHousing,
		c.Param("application_no"), c.Param("doc_id"), *meta)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "document re-uploaded", dto)
}

func (h *HousingHandler) transition(c echo.Context, msg string, fn func(actor user.Actor, no string) (*housing.ApplicationDTO, error)) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	dto, err := fn(actor, c.Param("application_no"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, msg, dto)
}

func (h *HousingHandler) remarked(c echo.Context, msg string, fn func(actor user.Actor, no, remarks string) (*housing.ApplicationDTO, error)) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req remarksReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := fn(actor, c.Param("application_no"), req.Remarks)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, msg, dto)
}
