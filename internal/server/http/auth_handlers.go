package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/avm-dev/notehub/internal/errs"
	"github.com/avm-dev/notehub/internal/model"
	"github.com/avm-dev/notehub/internal/service"
)

type userJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

func toUserJSON(u *model.User) userJSON {
	return userJSON{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Contact:   u.Contact,
		CreatedAt: u.CreatedAt,
	}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Contact  string `json:"contact"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := s.auth.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyExists):
			writeMessage(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, errs.ErrInvalidInput):
			writeMessage(w, http.StatusBadRequest, "All fields are required")
		default:
			s.log.Error("signup", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    toUserJSON(u),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, u, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			writeMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		s.log.Error("login", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   sess.AccessToken,
		"user":    userJSON{ID: u.ID.String(), Name: u.Name, Email: u.Email},
	})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := s.auth.RequestReset(r.Context(), req.Email); err != nil {
		// same message for unknown email as for bad credentials
		if errors.Is(err, errs.ErrUnauthorized) {
			writeMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		s.log.Error("forgot-password", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error sending OTP")
		return
	}

	// The code travels by mail only; it is never echoed here.
	writeMessage(w, http.StatusOK, "OTP sent to email")
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.auth.ConfirmReset(r.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			writeMessage(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, errs.ErrOTPNotFound):
			writeMessage(w, http.StatusBadRequest, "OTP not found or expired")
		case errors.Is(err, errs.ErrOTPInvalid):
			writeMessage(w, http.StatusBadRequest, "Invalid or expired OTP")
		default:
			s.log.Error("reset-password", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Error resetting password")
		}
		return
	}

	writeMessage(w, http.StatusOK, "Password reset successfully")
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.auth.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			writeMessage(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, errs.ErrUnauthorized):
			writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		default:
			s.log.Error("change-password", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Error changing password")
		}
		return
	}

	writeMessage(w, http.StatusOK, "Password changed successfully")
}

func (s *Server) handleProtected(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "This is a protected route",
		"user": map[string]string{
			"id":    claims.UserID.String(),
			"email": claims.Email,
		},
	})
}
