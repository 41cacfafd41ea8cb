package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"ledger/internal/errors"
	"ledger/internal/models"
	"ledger/internal/services/transaction"
	"ledger/internal/utils/logger"
	"ledger/internal/utils/response"
	"ledger/internal/validation"
)

// TransactionHandler adapts the transaction service to HTTP. Request shape
// validation lives here at the boundary; the service assumes well-typed
// requests.
type TransactionHandler struct {
	svc transaction.Service
}

func NewTransactionHandler(svc transaction.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// CreateTransaction handles POST /create_transaction.
//
// Status mapping: business-rule rejection 403, unknown user 404, malformed
// input 422, storage or cache failure 503.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var input struct {
		Username        string          `json:"username"`
		Amount          decimal.Decimal `json:"amount"`
		TransactionType int             `json:"transaction_type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}
	if input.Username == "" {
		return response.UnprocessableEntity(c, "username is required")
	}
	if err := validation.ValidateAmount(input.Amount); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}
	txType, err := models.ParseTransactionType(input.TransactionType)
	if err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	tx, err := h.svc.CreateTransaction(c.Context(), models.TransactionRequest{
		Username: input.Username,
		Amount:   input.Amount,
		Type:     txType,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return response.OK(c, tx)
}

// CreateReport handles POST /create_report.
//
// Invalid windows map to 422 together with the other input problems;
// storage or cache failures map to 503.
func (h *TransactionHandler) CreateReport(c *fiber.Ctx) error {
	var input struct {
		Username  string    `json:"username"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}
	if input.Username == "" {
		return response.UnprocessableEntity(c, "username is required")
	}
	if err := validation.ValidateDate(input.StartDate); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}
	if err := validation.ValidateDate(input.EndDate); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	report, err := h.svc.CreateTransactionReport(c.Context(), models.TransactionReportRequest{
		Username:  input.Username,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		if errors.IsValidation(err) {
			return response.UnprocessableEntity(c, err.Error())
		}
		return mapServiceError(c, err)
	}
	return response.OK(c, report)
}

func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.IsValidation(err):
		return response.Forbidden(c, err.Error())
	case errors.IsNotFound(err):
		return response.NotFound(c, err.Error())
	case errors.IsInvalidArgument(err):
		return response.UnprocessableEntity(c, err.Error())
	case errors.IsUnavailable(err):
		logger.Errorf("storage failure: %v", err)
		return response.ServiceUnavailable(c, "service unavailable")
	default:
		logger.Errorf("unexpected error: %v", err)
		return response.ServerError(c, "internal server error")
	}
}
