package http_handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Tzuyuchae/ansonzaneproject/internal/application/account"
	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
	"github.com/Tzuyuchae/ansonzaneproject/internal/logger"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/dto"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/middleware"
	"github.com/Tzuyuchae/ansonzaneproject/internal/transport/http/response"
)

type AccountsHandler struct {
	svc *account.Service
}

func NewAccountsHandler(svc *account.Service) *AccountsHandler {
	return &AccountsHandler{svc: svc}
}

func metricStatus(err error) string {
	if err == nil {
		return "success"
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "internal_error"
}

func (h *AccountsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	code, err := h.svc.Register(r.Context(), req.AccountID, req.AccountType, req.Password, req.Email)
	middleware.RegistrationsTotal.WithLabelValues(metricStatus(err)).Inc()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("account_id", req.AccountID).
		Msg("account_registered")

	response.Created(w, dto.RegisterData{
		Message:          "Account created successfully.",
		VerificationCode: code,
	})
}

func (h *AccountsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	id, err := h.svc.Login(r.Context(), req.Email, req.Password)
	middleware.LoginAttemptsTotal.WithLabelValues(metricStatus(err)).Inc()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("account_id", id.ID).
		Msg("account_logged_in")

	response.OK(w, dto.LoginData{
		User: dto.IdentityView{ID: id.ID, Email: id.Email, Role: id.Role},
	})
}

func (h *AccountsHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	err := h.svc.Verify(r.Context(), req.AccountID, req.Code)
	middleware.VerificationsTotal.WithLabelValues(metricStatus(err)).Inc()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("account_id", req.AccountID).
		Msg("account_verified")

	response.OK(w, dto.MessageData{Message: "Account verified successfully."})
}

func (h *AccountsHandler) ResendCode(w http.ResponseWriter, r *http.Request) {
	var req dto.ResendCodeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	code, err := h.svc.ResendCode(r.Context(), req.AccountID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("account_id", req.AccountID).
		Msg("verification_code_resent")

	response.OK(w, dto.RegisterData{
		Message:          "Verification code resent.",
		VerificationCode: code,
	})
}

func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "account_id")

	if err := h.svc.Delete(r.Context(), accountID); err != nil {
		response.WriteError(w, r, err)
		return
	}

	lg := logger.WithCtx(r.Context())
	lg.Info().
		Str("account_id", accountID).
		Msg("account_deleted")

	response.OK(w, dto.MessageData{Message: "Account deleted successfully"})
}
