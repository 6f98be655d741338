package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"credit-system/internal/api/handler/dto"
	"credit-system/internal/domain/credit"
	"credit-system/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreditHandler struct {
	service credit.CreditService
	logger  *slog.Logger
}

func NewCreditHandler(s credit.CreditService, l *slog.Logger) *CreditHandler {
	if s == nil {
		panic("credit service cannot be nil")
	}
	return &CreditHandler{
		service: s,
		logger:  l.With("component", "CreditHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized."
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	idStr := r.URL.Query().Get("customerId")
	if idStr == "" {
		return 0, fmt.Errorf("%w: customerId query parameter is required", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerId format: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

func getCreditCodeFromURL(r *http.Request) (uuid.UUID, error) {
	codeStr := chi.URLParam(r, "creditCode")
	if codeStr == "" {
		return uuid.Nil, fmt.Errorf("%w: creditCode not found in URL path", apperrors.ErrInvalidArgument)
	}
	code, err := uuid.Parse(codeStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid creditCode format: %s", apperrors.ErrInvalidArgument, codeStr)
	}
	return code, nil
}

// CreateCredit handles POST /api/credits
// @Summary Request a new credit
// @Description Creates a new pending credit for an existing customer. The owning customer is always resolved by id.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditRequest true "Credit creation request"
// @Success 201 {object} dto.CreditResponse "Credit successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 404 {object} dto.ErrorResponse "Owning customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [post]
// @Security BearerAuth
func (h *CreditHandler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	createdCredit, err := h.service.CreateCredit(r.Context(),
		req.CreditValueDecimal(), req.DayFirstInstallmentDate(), req.NumberOfInstallments, req.CustomerID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := dto.NewCreditResponse(createdCredit)
	h.logger.InfoContext(r.Context(), "Credit created successfully", slog.String("creditCode", resp.CreditCode))
	respondJSON(w, http.StatusCreated, resp)
}

// ListCredits handles GET /api/credits?customerId={id}
// @Summary List credits for a customer
// @Description Returns summaries of all credits belonging to the given customer. An unknown customer yields an empty list.
// @Tags Credits
// @Produce json
// @Param customerId query int true "Customer ID"
// @Success 200 {array} dto.CreditSummaryResponse "Credit summaries"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid customerId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits [get]
// @Security BearerAuth
func (h *CreditHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	credits, err := h.service.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list credits", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditSummaryList(credits))
}

// GetCreditByCode handles GET /api/credits/{creditCode}?customerId={id}
// @Summary Retrieve a credit by its code
// @Description Returns the credit identified by creditCode when it belongs to the given customer.
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Credit code (UUID)"
// @Param customerId query int true "Customer ID"
// @Success 200 {object} dto.CreditResponse "Credit details"
// @Failure 400 {object} dto.ErrorResponse "Invalid creditCode or customerId"
// @Failure 403 {object} dto.ErrorResponse "Credit belongs to another customer"
// @Failure 404 {object} dto.ErrorResponse "Credit not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/credits/{creditCode} [get]
// @Security BearerAuth
func (h *CreditHandler) GetCreditByCode(w http.ResponseWriter, r *http.Request) {
	creditCode, err := getCreditCodeFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	crd, err := h.service.FindByCreditCode(r.Context(), customerID, creditCode)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrForbidden) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to find credit by code", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCreditResponse(crd))
}
