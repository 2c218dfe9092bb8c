package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/domain/project"
	projuc "egov-portal-backend/internal/usecase/project"
)

// ProjectHandler serves the public disclosure pages; no auth required.
type ProjectHandler struct{ uc *projuc.Usecase }

func NewProjectHandler(uc *projuc.Usecase) *ProjectHandler { return &ProjectHandler{uc: uc} }

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	list, err := h.uc.ListProjects(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "projects", list)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondDomainErr(c, project.ErrNotFound)
	}
	dto, err := h.uc.GetProject(c.Request().Context(), id)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "project", dto)
}

func (h *ProjectHandler) ListAnnouncements(c echo.Context) error {
	list, err := h.uc.ListAnnouncements(c.Request().Context())
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "announcements", list)
}
