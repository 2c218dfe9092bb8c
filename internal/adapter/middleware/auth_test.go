package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/infrastructure/token"
	"egov-portal-backend/internal/testutil/usermock"
)

func authEcho(tokens *token.Manager, users user.Repository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(RequireAuth(tokens, users))
	e.GET("/whoami", func(c echo.Context) error {
		a, ok := ActorFrom(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]string{"user_id": a.UserID, "role": string(a.Role)})
	})
	return e
}

func TestRequireAuth(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	acct := &user.User{ID: 3, UserID: "c0ffee00c0ffee00c0ffee00c0ffee00", Email: "sari@example.com", Role: user.RoleZoningAdmin, IsActive: true}
	users := &usermock.Repo{
		GetByUserIDFn: func(_ context.Context, userID string) (*user.User, error) {
			if userID != acct.UserID {
				return nil, user.ErrNotFound
			}
			return acct, nil
		},
	}
	e := authEcho(tokens, users)

	t.Run("missing bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", rec.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		signed, _, err := other.Issue(acct)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", rec.Code)
		}
	})

	t.Run("valid token resolves actor", func(t *testing.T) {
		signed, _, err := tokens.Issue(acct)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
		}
		body := rec.Body.String()
		if !strings.Contains(body, acct.UserID) || !strings.Contains(body, string(user.RoleZoningAdmin)) {
			t.Fatalf("actor not propagated: %s", body)
		}
	})

	t.Run("inactive account rejected", func(t *testing.T) {
		inactive := &user.User{ID: 4, UserID: "deadbeefdeadbeefdeadbeefdeadbeef", Role: user.RoleCitizen, IsActive: false}
		usersInactive := &usermock.Repo{
			GetByUserIDFn: func(context.Context, string) (*user.User, error) { return inactive, nil },
		}
		signed, _, err := tokens.Issue(inactive)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		e2 := authEcho(tokens, usersInactive)
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
		rec := httptest.NewRecorder()
		e2.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", rec.Code)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		short := token.NewManager("test-secret", -time.Minute)
		signed, _, err := short.Issue(acct)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("want 401, got %d", rec.Code)
		}
	})
}
