package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-ledger/internal/adapter/registry/memory"
	"bank-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	validCPF = "123.456.789-09"
	otherCPF = "987.654.321-00"
)

func setupTestRouter() *gin.Engine {
	reg := memory.New()
	validator := service.NewCPFValidatorService()
	log := zerolog.Nop()

	return SetupRouter(RouterDeps{
		CustomerSvc: service.NewCustomerService(reg, validator, 50000, 3, log),
		LedgerSvc:   service.NewLedgerService(reg, reg, validator, nil, log),
		Logger:      log,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func registerBody(cpf string) map[string]interface{} {
	return map[string]interface{}{
		"name":       "Ana Souza",
		"birth_date": "20-05-1990",
		"cpf":        cpf,
		"address":    "Rua A, 10",
	}
}

func registerAndOpen(t *testing.T, r *gin.Engine, cpf string) int64 {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", registerBody(cpf))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/accounts", map[string]interface{}{"cpf": cpf})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(decodeData(t, w)["number"].(float64))
}

func TestRegisterCustomer_Success(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", registerBody(validCPF))

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "Ana Souza", data["name"])
	assert.Equal(t, "20-05-1990", data["birth_date"])
	assert.Equal(t, "12345678909", data["cpf"])
}

func TestRegisterCustomer_InvalidCPF(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", registerBody("111.111.111-00"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "LED_000", errorCode(t, w))
}

func TestRegisterCustomer_Duplicate(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", registerBody(validCPF))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/customers", registerBody(validCPF))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CUS_002", errorCode(t, w))
}

func TestOpenAccount_Success(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", registerBody(validCPF))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/accounts", map[string]interface{}{"cpf": validCPF})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "0001", data["branch"])
	assert.Equal(t, float64(1), data["number"])
	assert.Equal(t, "Ana Souza", data["owner_name"])
	assert.Equal(t, float64(0), data["balance"])
	assert.Equal(t, float64(50000), data["withdrawal_ceiling"])
	assert.Equal(t, float64(3), data["max_withdrawals"])
}

func TestOpenAccount_UnknownCustomer(t *testing.T) {
	r := setupTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts", map[string]interface{}{"cpf": otherCPF})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LED_005", errorCode(t, w))
}

func TestDeposit_Success(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposits", number),
		map[string]interface{}{"cpf": validCPF, "amount": 100000})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "deposit", data["kind"])
	assert.Equal(t, float64(100000), data["amount"])
	assert.Equal(t, float64(100000), data["balance"])
	assert.NotEmpty(t, data["recorded_at"])
}

func TestDeposit_NonPositiveAmount(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	for _, amount := range []int64{0, -10} {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposits", number),
			map[string]interface{}{"cpf": validCPF, "amount": amount})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestDeposit_BadAccountNumberParam(t *testing.T) {
	r := setupTestRouter()
	registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts/abc/deposits",
		map[string]interface{}{"cpf": validCPF, "amount": 1000})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "LED_000", errorCode(t, w))
}

func TestWithdraw_Success(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposits", number),
		map[string]interface{}{"cpf": validCPF, "amount": 100000})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/withdrawals", number),
		map[string]interface{}{"cpf": validCPF, "amount": 40000})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "withdrawal", data["kind"])
	assert.Equal(t, float64(60000), data["balance"])
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/withdrawals", number),
		map[string]interface{}{"cpf": validCPF, "amount": 1000})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "LED_002", errorCode(t, w))
}

func TestWithdraw_CeilingExceeded(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposits", number),
		map[string]interface{}{"cpf": validCPF, "amount": 100000})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/withdrawals", number),
		map[string]interface{}{"cpf": validCPF, "amount": 60000})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "LED_003", errorCode(t, w))
}

func TestWithdraw_LimitExceeded(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposits", number),
		map[string]interface{}{"cpf": validCPF, "amount": 100000})
	require.Equal(t, http.StatusCreated, w.Code)

	for i := 0; i < 3; i++ {
		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/withdrawals", number),
			map[string]interface{}{"cpf": validCPF, "amount": 10000})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/withdrawals", number),
		map[string]interface{}{"cpf": validCPF, "amount": 10000})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "LED_004", errorCode(t, w))
}

func TestMovement_ForeignAccount(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, "/api/v1/customers", registerBody(otherCPF))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposits", number),
		map[string]interface{}{"cpf": otherCPF, "amount": 1000})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "LED_006", errorCode(t, w))
}

func TestStatement_Success(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposits", number),
		map[string]interface{}{"cpf": validCPF, "amount": 100000})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/withdrawals", number),
		map[string]interface{}{"cpf": validCPF, "amount": 30000})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/statement?cpf=%s", number, "12345678909"), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "0001", data["branch"])
	assert.Equal(t, float64(70000), data["balance"])

	entries := data["entries"].([]interface{})
	require.Len(t, entries, 2)
	first := entries[0].(map[string]interface{})
	second := entries[1].(map[string]interface{})
	assert.Equal(t, "deposit", first["kind"])
	assert.Equal(t, float64(100000), first["amount"])
	assert.NotEmpty(t, first["timestamp"])
	assert.Equal(t, "withdrawal", second["kind"])
}

func TestStatement_MissingCPF(t *testing.T) {
	r := setupTestRouter()
	number := registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/statement", number), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatement_UnknownAccount(t *testing.T) {
	r := setupTestRouter()
	registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodGet, "/api/v1/accounts/99/statement?cpf=12345678909", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LED_005", errorCode(t, w))
}

func TestListAccounts(t *testing.T) {
	r := setupTestRouter()
	registerAndOpen(t, r, validCPF)

	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts", map[string]interface{}{"cpf": validCPF})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, float64(2), data["total"])
	items := data["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["number"])
	assert.Equal(t, "Ana Souza", first["owner_name"])
	assert.Equal(t, float64(50000), first["withdrawal_ceiling"])
}

func TestHealthCheck_NoDependencies(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
