package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/infrastructure/token"
	"egov-portal-backend/pkg/otp"
)

var (
	ErrInvalidOTP = errors.New("invalid, expired, or already used code")
)

// OTPStore keeps one single-use code per email. GetDel must be atomic so a
// code can only ever be consumed once.
type OTPStore interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	// GetDel returns the stored code and removes it; ErrNotFound-style errors
	// mean the code was never issued, expired, or was already used.
	GetDel(ctx context.Context, email string) (string, error)
}

type Usecase struct {
	users  user.Repository
	otps   OTPStore
	tokens *token.Manager
	otpTTL time.Duration
}

func NewUsecase(users user.Repository, otps OTPStore, tokens *token.Manager, otpTTL time.Duration) *Usecase {
	return &Usecase{users: users, otps: otps, tokens: tokens, otpTTL: otpTTL}
}

type ChallengeDTO struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserDTO struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type SessionDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

// RequestLogin checks the password and issues a time-boxed single-use OTP.
func (u *Usecase) RequestLogin(ctx context.Context, email, password string) (*ChallengeDTO, error) {
	acct, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}
	if !acct.IsActive {
		return nil, user.ErrInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, user.ErrInvalidCredentials
	}

	code := otp.NewCode()
	if err := u.otps.Set(ctx, acct.Email, code, u.otpTTL); err != nil {
		return nil, err
	}
	// The code itself goes out through the mail collaborator, never the API.
	return &ChallengeDTO{
		Email:     acct.Email,
		ExpiresAt: time.Now().UTC().Add(u.otpTTL),
	}, nil
}

// VerifyOTP consumes the stored code on every attempt, matching or not. A
// mistyped code therefore burns the challenge and the citizen logs in again;
// guessing never gets a second try against the same code.
func (u *Usecase) VerifyOTP(ctx context.Context, email, code string) (*SessionDTO, error) {
	stored, err := u.otps.GetDel(ctx, email)
	if err != nil || stored == "" || stored != code {
		return nil, ErrInvalidOTP
	}

	acct, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}
	signed, expires, err := u.tokens.Issue(acct)
	if err != nil {
		return nil, err
	}
	return &SessionDTO{
		Token:     signed,
		ExpiresAt: expires,
		User: UserDTO{
			UserID:   acct.UserID,
			Email:    acct.Email,
			FullName: acct.FullName,
			Role:     string(acct.Role),
		},
	}, nil
}

// CurrentUser resolves a parsed token subject back to the acting user.
func (u *Usecase) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	return u.users.GetByUserID(ctx, userID)
}
