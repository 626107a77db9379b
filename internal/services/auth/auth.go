// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package auth implements the credential-lifecycle flows: login, logout,
// signup with email verification, and the password-reset pair.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fashionshop/api/internal/apperr"
	"github.com/fashionshop/api/internal/models"
	"github.com/fashionshop/api/internal/repository"
	"github.com/fashionshop/api/internal/services/token"
)

// dummyHash is used for constant-time login to prevent timing attacks
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)

// Mailer dispatches transactional email. Implementations are fire-and-forget:
// calls return immediately and delivery failures are logged, never surfaced
// to the request that triggered them.
type Mailer interface {
	SendVerificationOTP(email, otp string)
	SendPasswordResetLink(email, userID, resetToken string)
	SendPasswordResetConfirmation(email string)
	SendEmailVerifiedConfirmation(email string)
}

// Service orchestrates the auth flows over the credential store, the
// one-time token store, the token issuer, and the notification gateway.
type Service struct {
	repo   *repository.Repository
	tokens *token.Issuer
	mail   Mailer
}

// NewService creates the auth service.
func NewService(repo *repository.Repository, tokens *token.Issuer, mail Mailer) *Service {
	return &Service{repo: repo, tokens: tokens, mail: mail}
}

// LoginResult carries the issued token pair and the authenticated identity.
// The User's sensitive fields are excluded from serialization by the model.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// Login authenticates by email and password and issues a fresh session pair.
// The new refresh token replaces any previously stored one, invalidating the
// prior session.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Constant-time: always perform bcrypt comparison to prevent timing attacks
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			slog.Warn("login_failed", "email", email, "reason", "user_not_found")
			return nil, apperr.IncorrectEmail()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login_failed", "email", email, "reason", "invalid_password")
		return nil, apperr.IncorrectPassword()
	}

	accessToken, refreshToken, err := s.tokens.IssueSessionTokens(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session tokens: %w", err)
	}

	if err := s.repo.UpdateUserRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	slog.Info("login_success", "user_id", user.ID)
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout revokes the session owning the presented refresh token. Unknown or
// stale tokens are treated as already logged out, not as an error; the
// returned bool reports whether a session was actually revoked.
func (s *Service) Logout(ctx context.Context, refreshToken string) (bool, error) {
	user, err := s.repo.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up session: %w", err)
	}

	if err := s.repo.UpdateUserRefreshToken(ctx, user.ID, ""); err != nil {
		return false, fmt.Errorf("failed to revoke session: %w", err)
	}

	slog.Info("logout", "user_id", user.ID)
	return true, nil
}

// ForgotPassword creates a reset token and emails the reset link. While a
// reset token is outstanding for the user, further requests are forbidden;
// the cooldown lasts until that token is consumed or deleted.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return apperr.BadRequest("Please provide a valid email!")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found, invalid request")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	_, err = s.repo.GetOneTimeToken(ctx, user.ID, models.TokenKindReset)
	if err == nil {
		return apperr.Forbidden("Only after one hour you can request for another token!")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to check reset token: %w", err)
	}

	resetToken, err := generateResetToken()
	if err != nil {
		return err
	}
	if err := s.repo.CreateOneTimeToken(ctx, user.ID, models.TokenKindReset, hashToken(resetToken)); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	s.mail.SendPasswordResetLink(user.Email, user.ID, resetToken)
	slog.Info("password_reset_requested", "user_id", user.ID)
	return nil
}

// ResetPassword sets a new password for the authenticated identity. The
// emailed token/id pair is not re-validated here; the identity comes from
// the caller's access token. Any outstanding reset token is destroyed.
func (s *Service) ResetPassword(ctx context.Context, userID, password string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found!")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err == nil {
		return apperr.BadRequest("New password must be different from the old one!")
	}

	trimmed := strings.TrimSpace(password)
	if violations := ValidatePassword(trimmed); len(violations) > 0 {
		return apperr.BadRequestRules("Password does not meet the requirements", violationMessages(violations))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(trimmed), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdateUserPassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.repo.DeleteOneTimeTokens(ctx, user.ID, models.TokenKindReset); err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}

	s.mail.SendPasswordResetConfirmation(user.Email)
	slog.Info("password_reset", "user_id", user.ID)
	return nil
}

// SignupParams holds the parameters for account creation.
type SignupParams struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Signup creates a new unverified account together with its default cart and
// address, persists a verification OTP, and emails the code. The cart and
// address are written for the pending user id before the user row itself and
// outside any transaction, so a duplicate email can leave them orphaned.
func (s *Service) Signup(ctx context.Context, params SignupParams) (*models.User, error) {
	if violations := ValidatePassword(params.Password); len(violations) > 0 {
		return nil, apperr.BadRequestRules("Password does not meet the requirements", violationMessages(violations))
	}

	userID := uuid.NewString()

	if _, err := s.repo.CreateCart(ctx, userID); err != nil {
		slog.Error("signup_cart_failed", "error", err)
		return nil, apperr.Internal("Something goes wrong while create cart, please try again")
	}
	if _, err := s.repo.InitAddress(ctx, userID); err != nil {
		slog.Error("signup_address_failed", "error", err)
		return nil, apperr.Internal("Something goes wrong while init address, please try again")
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateOneTimeToken(ctx, userID, models.TokenKindVerification, hashToken(otp)); err != nil {
		return nil, fmt.Errorf("failed to store verification token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           userID,
		Email:        params.Email,
		PasswordHash: string(hash),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PhoneNumber:  params.PhoneNumber,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.BadRequest("This email has already been registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.mail.SendVerificationOTP(user.Email, otp)
	slog.Info("signup_success", "user_id", user.ID)
	return user, nil
}

// VerifyEmail checks the OTP for a user and irreversibly marks the email
// verified. The verification token is destroyed on success.
func (s *Service) VerifyEmail(ctx context.Context, userID, otp string) error {
	if userID == "" || strings.TrimSpace(otp) == "" {
		return apperr.BadRequest("otp and userId required!")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return apperr.BadRequest("invalid userId!")
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found!")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.EmailVerified {
		return apperr.BadRequest("This email is already verified!")
	}

	record, err := s.repo.GetOneTimeToken(ctx, user.ID, models.TokenKindVerification)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Kept for client compatibility: a missing token reports the
			// user, not the token, as absent.
			return apperr.NotFound("User not found!")
		}
		return fmt.Errorf("failed to get verification token: %w", err)
	}

	if !compareToken(record.TokenHash, strings.TrimSpace(otp)) {
		return apperr.BadRequest("Please provide a valid OTP!")
	}

	if err := s.repo.DeleteOneTimeTokens(ctx, user.ID, models.TokenKindVerification); err != nil {
		return fmt.Errorf("failed to delete verification token: %w", err)
	}
	if err := s.repo.MarkUserVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	s.mail.SendEmailVerifiedConfirmation(user.Email)
	slog.Info("email_verified", "user_id", user.ID)
	return nil
}
