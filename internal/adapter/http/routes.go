package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts every endpoint. The authed chain must start with
// RequireAuth; the idempotency middleware relies on the actor it resolves.
func RegisterRoutes(e *echo.Echo, authed []echo.MiddlewareFunc,
	h *Handler, ah *AuthHandler, zh *ZoningHandler, hh *HousingHandler, ph *ProjectHandler) {

	e.GET("/health", h.Health)

	e.POST("/auth/login", ah.Login)
	e.POST("/auth/verify-otp", ah.VerifyOTP)

	// public disclosure pages
	e.GET("/projects", ph.ListProjects)
	e.GET("/projects/:id", ph.GetProject)
	e.GET("/announcements", ph.ListAnnouncements)

	g := e.Group("", authed...)
	g.GET("/auth/me", ah.Me)

	// zoning clearance
	g.POST("/zoning/applications", zh.Create)
	g.GET("/zoning/applications", zh.List)
	g.GET("/zoning/applications/:application_no", zh.Get)
	g.POST("/zoning/applications/:application_no/start-review", zh.StartReview)
	g.POST("/zoning/applications/:application_no/forward-technical", zh.ForwardToTechnical)
	g.POST("/zoning/applications/:application_no/return-technical", zh.ReturnFromTechnical)
	g.POST("/zoning/applications/:application_no/require-changes", zh.RequireChanges)
	g.POST("/zoning/applications/:application_no/resume-review", zh.ResumeReview)
	g.POST("/zoning/applications/:application_no/approve", zh.Approve)
	g.POST("/zoning/applications/:application_no/reject", zh.Reject)
	g.POST("/zoning/applications/:application_no/documents", zh.UploadDocument)
	g.POST("/zoning/applications/:application_no/documents/:doc_id/verify", zh.VerifyDocument)
	g.POST("/zoning/applications/:application_no/documents/:doc_id/reupload", zh.ReuploadDocument)

	// housing beneficiary
	g.POST("/housing/applications", hh.Create)
	g.GET("/housing/applications", hh.List)
	g.GET("/housing/applications/:application_no", hh.Get)
	g.POST("/housing/applications/:application_no/submit", hh.Submit)
	g.POST("/housing/applications/:application_no/start-review", hh.StartReview)
	g.POST("/housing/applications/:application_no/schedule-inspection", hh.ScheduleInspection)
	g.POST("/housing/applications/:application_no/complete-inspection", hh.CompleteInspection)
	g.POST("/housing/applications/:application_no/request-info", hh.RequestInfo)
	g.POST("/housing/applications/:application_no/resume-review", hh.ResumeReview)
	g.POST("/housing/applications/:application_no/hold", hh.Hold)
	g.POST("/housing/applications/:application_no/approve", hh.Approve)
	g.POST("/housing/applications/:application_no/reject", hh.Reject)
	g.POST("/housing/applications/:application_no/withdraw", hh.Withdraw)
	g.POST("/housing/applications/:application_no/appeal", hh.Appeal)
	g.POST("/housing/applications/:application_no/reopen-appeal", hh.ReopenAppeal)
	g.POST("/housing/applications/:application_no/issue-offer", hh.IssueOffer)
	g.POST("/housing/applications/:application_no/assign-beneficiary", hh.AssignBeneficiary)
	g.POST("/housing/applications/:application_no/close", hh.Close)
	g.POST("/housing/applications/:application_no/end-occupancy", hh.EndOccupancy)
	g.POST("/housing/applications/:application_no/documents", hh.UploadDocument)
	g.POST("/housing/applications/:application_no/documents/:doc_id/verify", hh.VerifyDocument)
	g.POST("/housing/applications/:application_no/documents/:doc_id/reupload", hh.ReuploadDocument)
}
