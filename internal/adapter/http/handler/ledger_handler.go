package handler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles balance movements and account reporting.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Deposit handles POST /api/v1/accounts/:number/deposits.
func (h *LedgerHandler) Deposit(c *gin.Context) {
	h.movement(c, h.ledgerSvc.Deposit)
}

// Withdraw handles POST /api/v1/accounts/:number/withdrawals.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	h.movement(c, h.ledgerSvc.Withdraw)
}

func (h *LedgerHandler) movement(c *gin.Context, apply func(context.Context, ports.MovementRequest) (*ports.MovementResult, error)) {
	number, ok := accountNumber(c)
	if !ok {
		return
	}

	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := apply(c.Request.Context(), ports.MovementRequest{
		CPF:           req.CPF,
		AccountNumber: number,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MovementResponse{
		AccountNumber: result.AccountNumber,
		Kind:          strings.ToLower(string(result.Kind)),
		Amount:        result.Amount,
		Balance:       result.Balance,
		RecordedAt:    result.RecordedAt.Format(time.RFC3339),
	})
}

// Statement handles GET /api/v1/accounts/:number/statement. The acting
// customer is identified by the cpf query parameter.
func (h *LedgerHandler) Statement(c *gin.Context) {
	number, ok := accountNumber(c)
	if !ok {
		return
	}

	cpf := c.Query("cpf")
	if cpf == "" {
		response.Error(c, apperror.Validation("cpf query parameter is required"))
		return
	}

	stmt, err := h.ledgerSvc.Statement(c.Request.Context(), ports.StatementRequest{
		CPF:           cpf,
		AccountNumber: number,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	entries := make([]dto.StatementEntryResponse, 0, len(stmt.Entries))
	for _, e := range stmt.Entries {
		entries = append(entries, dto.StatementEntryResponse{
			Kind:      strings.ToLower(string(e.Kind)),
			Amount:    e.Amount,
			Timestamp: e.RecordedAt.Format(time.RFC3339),
		})
	}

	response.OK(c, dto.StatementResponse{
		Branch:    stmt.Branch,
		Number:    stmt.AccountNumber,
		OwnerName: stmt.OwnerName,
		Balance:   stmt.Balance,
		Entries:   entries,
	})
}

// ListAccounts handles GET /api/v1/accounts.
func (h *LedgerHandler) ListAccounts(c *gin.Context) {
	summaries, err := h.ledgerSvc.ListAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AccountSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.AccountSummaryResponse{
			Branch:            s.Branch,
			Number:            s.Number,
			OwnerName:         s.OwnerName,
			Balance:           s.Balance,
			WithdrawalCeiling: s.WithdrawalCeiling,
		})
	}

	response.OK(c, dto.AccountListResponse{Items: items, Total: len(items)})
}

// accountNumber parses the :number path parameter, responding with a
// validation error when it is not a positive integer.
func accountNumber(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		response.Error(c, apperror.Validation("account number must be a positive integer"))
		return 0, false
	}
	return number, true
}
