package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/adapter/middleware"
	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/user"
	domain "egov-portal-backend/internal/domain/zoning"
	"egov-portal-backend/internal/infrastructure/storage"
	docuc "egov-portal-backend/internal/usecase/document"
	"egov-portal-backend/internal/usecase/zoning"
)

type ZoningHandler struct {
	uc    *zoning.Usecase
	docs  *docuc.Usecase
	blobs storage.Store
}

func NewZoningHandler(uc *zoning.Usecase, docs *docuc.Usecase, blobs storage.Store) *ZoningHandler {
	return &ZoningHandler{uc: uc, docs: docs, blobs: blobs}
}

type createZoningReq struct {
	ApplicantName      string  `json:"applicant_name"       validate:"required"`
	ApplicantEmail     string  `json:"applicant_email"      validate:"required,email"`
	ApplicantPhone     string  `json:"applicant_phone"      validate:"required"`
	ApplicantAddress   string  `json:"applicant_address"    validate:"required"`
	ProjectDescription string  `json:"project_description"  validate:"required"`
	ProjectAddress     string  `json:"project_address"      validate:"required"`
	TotalFloorAreaSqm  float64 `json:"total_floor_area_sqm" validate:"required,gt=0,dec2"`
}

func (h *ZoningHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req createZoningReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), actor, zoning.CreateInput(req))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusCreated, "application submitted", dto)
}

func (h *ZoningHandler) List(c echo.Context) error {
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

func (h *ZoningHandler) Get(c echo.Context) error {
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

func (h *ZoningHandler) StartReview(c echo.Context) error {
	return h.transition(c, func(actor user.Actor, no string) (*zoning.ApplicationDTO, error) {
		return h.uc.StartReview(c.Request().Context(), actor, no)
	})
}

type forwardTechnicalReq struct {
	TechnicalStaffID uint64 `json:"technical_staff_id" validate:"required"`
}

func (h *ZoningHandler) ForwardToTechnical(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req forwardTechnicalReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.ForwardToTechnical(c.Request().Context(), actor, c.Param("application_no"), req.TechnicalStaffID)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "forwarded to technical review", dto)
}

func (h *ZoningHandler) ReturnFromTechnical(c echo.Context) error {
	return h.transition(c, func(actor user.Actor, no string) (*zoning.ApplicationDTO, error) {
		return h.uc.ReturnFromTechnical(c.Request().Context(), actor, no)
	})
}

type remarksReq struct {
	Remarks string `json:"remarks" validate:"required"`
}

func (h *ZoningHandler) RequireChanges(c echo.Context) error {
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
	dto, err := h.uc.RequireChanges(c.Request().Context(), actor, c.Param("application_no"), req.Remarks)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "changes requested", dto)
}

func (h *ZoningHandler) ResumeReview(c echo.Context) error {
	return h.transition(c, func(actor user.Actor, no string) (*zoning.ApplicationDTO, error) {
		return h.uc.ResumeReview(c.Request().Context(), actor, no)
	})
}

type decisionReq struct {
	Note string `json:"note" validate:"required"`
}

func (h *ZoningHandler) Approve(c echo.Context) error {
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
	dto, err := h.uc.Approve(c.Request().Context(), actor, c.Param("application_no"), req.Note)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "application approved", dto)
}

type rejectReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ZoningHandler) Reject(c echo.Context) error {
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
	dto, err := h.uc.Reject(c.Request().Context(), actor, c.Param("application_no"), req.Reason)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "application rejected", dto)
}

// UploadDocument accepts a multipart form: `file` plus `doc_type` and an
// optional `category` routing hint (initial_review or technical_review).
func (h *ZoningHandler) UploadDocument(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	meta, err := saveUpload(c, h.blobs)
	if err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}
	dto, err := h.docs.Upload(c.Request().Context(), actor, document.OwnerZoning, c.Param("application_no"), docuc.UploadInput{
		DocType:  c.FormValue("doc_type"),
		Category: document.Category(c.FormValue("category")),
		File:     *meta,
	})
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusCreated, "document uploaded", dto)
}

type verifyDocumentReq struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Remarks  string `json:"remarks"`
}

func (h *ZoningHandler) VerifyDocument(c echo.Context) error {
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
	dto, err := h.docs.Verify(c.Request().Context(), actor, document.OwnerZoning,
		c.Param("application_no"), c.Param("doc_id"), docuc.Decision(req.Decision), req.Remarks)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "document reviewed", dto)
}

func (h *ZoningHandler) ReuploadDocument(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	meta, err := saveUpload(c, h.blobs)
	if err != nil {
		return respondErr(c, http.StatusBadRequest, err.Error())
	}
	dto, err := h.docs.Reupload(c.Request().Context(), actor, document.OwnerZoning,
		c.Param("application_no"), c.Param("doc_id"), *meta)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "document re-uploaded", dto)
}

func (h *ZoningHandler) transition(c echo.Context, fn func(actor user.Actor, no string) (*zoning.ApplicationDTO, error)) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	dto, err := fn(actor, c.Param("application_no"))
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "status updated", dto)
}
