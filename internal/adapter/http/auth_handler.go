package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/adapter/middleware"
	"egov-portal-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and mails out a single-use OTP. The code never
// appears in the response body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.RequestLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "verification code sent", dto)
}

type verifyOTPReq struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required,len=6,numeric"`
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondDomainErr(c, err)
	}
	dto, err := h.uc.VerifyOTP(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "session issued", dto)
}

// Me returns the resolved profile for the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, "unauthenticated")
	}
	acct, err := h.uc.CurrentUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "profile", auth.UserDTO{
		UserID:   acct.UserID,
		Email:    acct.Email,
		FullName: acct.FullName,
		Role:     string(acct.Role),
	})
}
