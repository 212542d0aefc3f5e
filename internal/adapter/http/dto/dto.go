package dto

// RegisterCustomerRequest is the request body for customer registration.
// BirthDate uses the dd-mm-yyyy layout.
type RegisterCustomerRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	BirthDate string `json:"birth_date" binding:"required,len=10"`
	CPF       string `json:"cpf" binding:"required,cpf"`
	Address   string `json:"address" binding:"required,min=1,max=200"`
}

// OpenAccountRequest is the request body for opening a checking account.
type OpenAccountRequest struct {
	CPF string `json:"cpf" binding:"required,cpf"`
}

// MovementRequest is the request body for deposits and withdrawals. The
// acting customer is identified by CPF; the amount is in centavos.
type MovementRequest struct {
	CPF    string `json:"cpf" binding:"required,cpf"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// CustomerResponse is the response body for successful registration.
type CustomerResponse struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	CPF       string `json:"cpf"`
	Address   string `json:"address"`
}

// AccountResponse is the response body for a newly opened account.
type AccountResponse struct {
	Branch            string `json:"branch"`
	Number            int64  `json:"number"`
	OwnerName         string `json:"owner_name"`
	Balance           int64  `json:"balance"`
	WithdrawalCeiling int64  `json:"withdrawal_ceiling"`
	MaxWithdrawals    int    `json:"max_withdrawals"`
}

// MovementResponse is the response body for an applied movement.
type MovementResponse struct {
	AccountNumber int64  `json:"account_number"`
	Kind          string `json:"kind"`
	Amount        int64  `json:"amount"`
	Balance       int64  `json:"balance"`
	RecordedAt    string `json:"recorded_at"`
}

// StatementEntryResponse is one history line on a statement.
type StatementEntryResponse struct {
	Kind      string `json:"kind"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
}

// StatementResponse is the response body for an account statement.
type StatementResponse struct {
	Branch    string                   `json:"branch"`
	Number    int64                    `json:"number"`
	OwnerName string                   `json:"owner_name"`
	Balance   int64                    `json:"balance"`
	Entries   []StatementEntryResponse `json:"entries"`
}

// AccountSummaryResponse is one account on the account listing.
type AccountSummaryResponse struct {
	Branch            string `json:"branch"`
	Number            int64  `json:"number"`
	OwnerName         string `json:"owner_name"`
	Balance           int64  `json:"balance"`
	WithdrawalCeiling *int64 `json:"withdrawal_ceiling,omitempty"`
}

// AccountListResponse wraps the account listing.
type AccountListResponse struct {
	Items []AccountSummaryResponse `json:"items"`
	Total int                      `json:"total"`
}
