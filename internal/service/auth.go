// Package service contains application services for authentication and notes.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgcrypto "github.com/avm-dev/notehub/internal/crypto"
	"github.com/avm-dev/notehub/internal/errs"
	"github.com/avm-dev/notehub/internal/mail"
	"github.com/avm-dev/notehub/internal/model"
	"github.com/avm-dev/notehub/internal/otp"
	"github.com/avm-dev/notehub/internal/repository"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// SignupInput collects new-account fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Contact  string
}

// AuthService defines credential lifecycle and password reset operations.
type AuthService interface {
	// Signup creates a new user. Fails with ErrAlreadyExists if the email is taken.
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	// Login authenticates and issues a session token.
	Login(ctx context.Context, email, password string) (model.Session, *model.User, error)
	// ChangePassword rehashes and persists a new password for an authenticated user.
	ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error
	// RequestReset issues a one-time code and dispatches it by email.
	RequestReset(ctx context.Context, email string) error
	// ConfirmReset validates the code and persists the new password.
	ConfirmReset(ctx context.Context, email, code, newPassword string) error
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	otps      otp.Store
	mailer    mail.Mailer
	signKey   []byte
	accessTTL time.Duration
	otpTTL    time.Duration
	hashCost  int
	now       func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, otps otp.Store, mailer mail.Mailer,
	signKey []byte, accessTTL, otpTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:     users,
		otps:      otps,
		mailer:    mailer,
		signKey:   signKey,
		accessTTL: accessTTL,
		otpTTL:    otpTTL,
		hashCost:  pkgcrypto.DefaultCost,
		now:       time.Now,
	}
}

// Signup creates a new user record with a hashed password.
func (s *AuthServiceImpl) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email/password required", errs.ErrInvalidInput)
	}

	// Existence check first; the unique index still backstops concurrent signups.
	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, errs.ErrAlreadyExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	hash, err := pkgcrypto.HashPassword(in.Password, s.hashCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:        uid,
		Email:     in.Email,
		PwdHash:   hash,
		Name:      in.Name,
		Contact:   in.Contact,
		CreatedAt: s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates by email and password and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (model.Session, *model.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !pkgcrypto.VerifyPassword(password, u.PwdHash) {
		return model.Session{}, nil, errs.ErrUnauthorized
	}

	sess, err := s.issueAccessToken(u.ID, u.Email)
	if err != nil {
		return model.Session{}, nil, err
	}
	return sess, u, nil
}

// ChangePassword verifies the current password before persisting the new one.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password required", errs.ErrInvalidInput)
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil || !pkgcrypto.VerifyPassword(current, u.PwdHash) {
		return errs.ErrUnauthorized
	}
	hash, err := pkgcrypto.HashPassword(newPassword, s.hashCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, u.Email, hash)
}

// RequestReset issues a one-time code for the email, overwriting any prior
// code, and dispatches it through the mailer. An unknown email is reported
// identically to bad credentials so accounts cannot be enumerated by text.
func (s *AuthServiceImpl) RequestReset(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email required", errs.ErrInvalidInput)
	}
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrUnauthorized
		}
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}
	entry := otp.Entry{Code: code, ExpiresAt: s.now().Add(s.otpTTL)}
	if err := s.otps.Put(ctx, email, entry); err != nil {
		return err
	}
	return s.mailer.SendOTP(ctx, email, code, s.otpTTL)
}

// ConfirmReset consumes the code and persists the new password. A mismatched
// or expired code removes the entry; the flow must be restarted.
func (s *AuthServiceImpl) ConfirmReset(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" || newPassword == "" {
		return fmt.Errorf("%w: email/otp/newPassword required", errs.ErrInvalidInput)
	}

	entry, ok, err := s.otps.Get(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrOTPNotFound
	}
	if entry.Code != code || !s.now().Before(entry.ExpiresAt) {
		_ = s.otps.Delete(ctx, email)
		return errs.ErrOTPInvalid
	}

	hash, err := pkgcrypto.HashPassword(newPassword, s.hashCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}
	return s.otps.Delete(ctx, email)
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID, email string) (model.Session, error) {
	now := s.now()
	exp := now.Add(s.accessTTL)
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{AccessToken: signed, ExpiresAt: exp}, nil
}

// VerifyAccessToken parses and validates a bearer token against the signing key.
func VerifyAccessToken(tokenString string, signKey []byte) (model.Claims, error) {
	var claims accessClaims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signKey, nil
	})
	if err != nil || !tok.Valid {
		return model.Claims{}, errs.ErrUnauthorized
	}
	uid, err := uuid.FromString(claims.Subject)
	if err != nil {
		return model.Claims{}, errs.ErrUnauthorized
	}
	return model.Claims{UserID: uid, Email: claims.Email}, nil
}
