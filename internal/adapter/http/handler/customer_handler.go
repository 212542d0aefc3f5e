package handler

import (
	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const birthDateLayout = "02-01-2006"

// CustomerHandler handles customer registration and account opening.
type CustomerHandler struct {
	customerSvc ports.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerSvc ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

// Register handles POST /api/v1/customers.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req dto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cust, err := h.customerSvc.Register(c.Request.Context(), ports.RegisterCustomerRequest{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		CPF:       req.CPF,
		Address:   req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CustomerResponse{
		Name:      cust.Name,
		BirthDate: cust.BirthDate.Format(birthDateLayout),
		CPF:       cust.CPF,
		Address:   cust.Address,
	})
}

// OpenAccount handles POST /api/v1/accounts.
func (h *CustomerHandler) OpenAccount(c *gin.Context) {
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	acc, err := h.customerSvc.OpenAccount(c.Request.Context(), ports.OpenAccountRequest{CPF: req.CPF})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.AccountResponse{
		Branch:    acc.Branch(),
		Number:    acc.Number(),
		OwnerName: acc.Owner().Name,
		Balance:   acc.Balance(),
	}
	if checking, ok := acc.(*domain.CheckingAccount); ok {
		resp.WithdrawalCeiling = checking.WithdrawalCeiling()
		resp.MaxWithdrawals = checking.MaxWithdrawals()
	}

	response.Created(c, resp)
}
