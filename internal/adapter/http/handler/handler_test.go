package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-backoffice/internal/adapter/http/dto"
	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/internal/core/ports/mocks"
	"bank-backoffice/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Account Handler Tests ---

func TestAccountCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccounts)

	clientID := uuid.New()
	accountID := uuid.New()
	now := time.Now()

	mockAccounts.EXPECT().Create(gomock.Any(), ports.CreateAccountRequest{
		ClientID:      clientID,
		Type:          domain.AccountTypeSavings,
		InitialAmount: 100_000,
	}).Return(&domain.Account{
		ID:             accountID,
		Number:         "302104560000001",
		Type:           domain.AccountTypeSavings,
		InitialAmount:  100_000,
		CurrentBalance: 100_000,
		ClientID:       clientID,
		Active:         true,
		CreatedAt:      now,
	}, nil)

	body, _ := json.Marshal(dto.CreateAccountRequest{
		ClientID:      clientID.String(),
		Type:          "SAVINGS",
		InitialAmount: "1000.00",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, accountID.String(), data["id"])
	assert.Equal(t, "302104560000001", data["number"])
	assert.Equal(t, "1000.00", data["initialAmount"])
	assert.Equal(t, "1000.00", data["currentBalance"])
}

func TestAccountCreate_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccounts)

	// Three decimal places fail the money binding.
	body, _ := json.Marshal(dto.CreateAccountRequest{
		ClientID:      uuid.New().String(),
		Type:          "SAVINGS",
		InitialAmount: "10.001",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountCreate_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccounts)

	body, _ := json.Marshal(dto.CreateAccountRequest{
		ClientID:      uuid.New().String(),
		Type:          "CRYPTO",
		InitialAmount: "100.00",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountGetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccounts)

	id := uuid.New()
	mockAccounts.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperror.ErrAccountNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACC_001", resp["error_code"])
}

func TestAccountSetActive_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccounts)

	id := uuid.New()
	mockAccounts.EXPECT().SetActive(gomock.Any(), id, false).Return(&domain.Account{
		ID:       id,
		Number:   "302104560000001",
		Type:     domain.AccountTypeSavings,
		ClientID: uuid.New(),
		Active:   false,
	}, nil)

	body := []byte(`{"active": false}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.SetActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["active"])
}

func TestAccountDelete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountService(ctrl)
	h := NewAccountHandler(mockAccounts)

	id := uuid.New()
	mockAccounts.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Transaction Handler Tests ---

func TestTransactionApply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewTransactionHandler(mockLedger)

	accountID := uuid.New()
	txID := uuid.New()
	now := time.Now()

	mockLedger.EXPECT().Apply(gomock.Any(), ports.ApplyTransactionRequest{
		AccountID: accountID,
		Type:      domain.TransactionTypeDeposit,
		Amount:    57_550,
	}).Return(&domain.Transaction{
		ID:        txID,
		Date:      now,
		Type:      domain.TransactionTypeDeposit,
		Amount:    57_550,
		Balance:   157_550,
		AccountID: accountID,
		CreatedAt: now,
	}, nil)

	body, _ := json.Marshal(dto.ApplyTransactionRequest{
		AccountID: accountID.String(),
		Type:      "DEPOSIT",
		Amount:    "575.50",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Apply(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "575.50", data["amount"])
	assert.Equal(t, "1575.50", data["balance"])
	assert.Equal(t, "DEPOSIT", data["type"])
}

func TestTransactionApply_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewTransactionHandler(mockLedger)

	accountID := uuid.New()
	mockLedger.EXPECT().Apply(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientBalance("302104560000001"))

	body, _ := json.Marshal(dto.ApplyTransactionRequest{
		AccountID: accountID.String(),
		Type:      "WITHDRAWAL",
		Amount:    "9999.99",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Apply(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TRX_003", resp["error_code"])
	assert.Contains(t, resp["message"], "302104560000001")
}

func TestTransactionApply_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewTransactionHandler(mockLedger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Apply(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp["error_code"])
}

func TestTransactionListInRange_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewTransactionHandler(mockLedger)

	accountID := uuid.New()
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	mockLedger.EXPECT().TransactionsInRange(gomock.Any(), accountID, from, to).
		Return([]domain.Transaction{
			{ID: uuid.New(), Date: from.AddDate(0, 0, 9), Type: domain.TransactionTypeDeposit, Amount: 50_000, Balance: 150_000, AccountID: accountID},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/?dateTransactionStart=2024-02-01&dateTransactionEnd=2024-02-29", nil)
	c.Params = gin.Params{{Key: "accountId", Value: accountID.String()}}

	h.ListInRange(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	entry := items[0].(map[string]interface{})
	assert.Equal(t, "2024-02-10", entry["date"])
	assert.Equal(t, "500.00", entry["amount"])
}

func TestTransactionListInRange_MissingDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewTransactionHandler(mockLedger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "accountId", Value: uuid.New().String()}}

	h.ListInRange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionListInRange_InvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewTransactionHandler(mockLedger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/?dateTransactionStart=2024-02-29&dateTransactionEnd=2024-02-01", nil)
	c.Params = gin.Params{{Key: "accountId", Value: uuid.New().String()}}

	h.ListInRange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionLast_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	h := NewTransactionHandler(mockLedger)

	accountID := uuid.New()
	mockLedger.EXPECT().LastTransaction(gomock.Any(), accountID).Return(&domain.Transaction{
		ID:        uuid.New(),
		Type:      domain.TransactionTypeWithdrawal,
		Amount:    10_000,
		Balance:   90_000,
		AccountID: accountID,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "accountId", Value: accountID.String()}}

	h.Last(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "WITHDRAWAL", data["type"])
	assert.Equal(t, "900.00", data["balance"])
}

// --- Client Handler Tests ---

func TestClientCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := mocks.NewMockClientService(ctrl)
	h := NewClientHandler(mockClients)

	clientID := uuid.New()
	mockClients.EXPECT().Create(gomock.Any(), ports.CreateClientRequest{
		Name:     "Jose Lema",
		DNI:      "1710034065",
		Gender:   "M",
		Age:      34,
		Address:  "Otavalo sn y principal",
		Phone:    "098254785",
		Password: "s3cret-pass",
	}).Return(&domain.Client{
		ID:      clientID,
		Name:    "Jose Lema",
		DNI:     "1710034065",
		Gender:  "M",
		Age:     34,
		Address: "Otavalo sn y principal",
		Phone:   "098254785",
		Active:  true,
	}, nil)

	body, _ := json.Marshal(dto.CreateClientRequest{
		Name:     "Jose Lema",
		DNI:      "1710034065",
		Gender:   "M",
		Age:      34,
		Address:  "Otavalo sn y principal",
		Phone:    "098254785",
		Password: "s3cret-pass",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, clientID.String(), data["id"])
	assert.Equal(t, "Jose Lema", data["name"])
	assert.NotContains(t, data, "password")
}

func TestClientCreate_UnderAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := mocks.NewMockClientService(ctrl)
	h := NewClientHandler(mockClients)

	body, _ := json.Marshal(dto.CreateClientRequest{
		Name:     "Too Young",
		DNI:      "1234567890",
		Gender:   "F",
		Age:      15,
		Address:  "Somewhere",
		Phone:    "0999999999",
		Password: "password123",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientCreate_DuplicateDNI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := mocks.NewMockClientService(ctrl)
	h := NewClientHandler(mockClients)

	mockClients.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrClientConflict("DNI"))

	body, _ := json.Marshal(dto.CreateClientRequest{
		Name:     "Jose Lema",
		DNI:      "1710034065",
		Gender:   "M",
		Age:      34,
		Address:  "Otavalo sn y principal",
		Phone:    "098254785",
		Password: "s3cret-pass",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CLI_003", resp["error_code"])
}

func TestClientUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := mocks.NewMockClientService(ctrl)
	h := NewClientHandler(mockClients)

	id := uuid.New()
	mockClients.EXPECT().Update(gomock.Any(), ports.UpdateClientRequest{
		ID:      id,
		Name:    "Jose Lema",
		Gender:  "M",
		Age:     35,
		Address: "Quito centro",
		Phone:   "098254785",
	}).Return(&domain.Client{
		ID:      id,
		Name:    "Jose Lema",
		DNI:     "1710034065",
		Gender:  "M",
		Age:     35,
		Address: "Quito centro",
		Phone:   "098254785",
		Active:  true,
	}, nil)

	body, _ := json.Marshal(dto.UpdateClientRequest{
		Name:    "Jose Lema",
		Gender:  "M",
		Age:     35,
		Address: "Quito centro",
		Phone:   "098254785",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Quito centro", data["address"])
	assert.Equal(t, "1710034065", data["dni"])
}

func TestClientDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := mocks.NewMockClientService(ctrl)
	h := NewClientHandler(mockClients)

	id := uuid.New()
	mockClients.EXPECT().Delete(gomock.Any(), id).Return(apperror.ErrClientNotFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Report Handler Tests ---

func TestReport_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReports := mocks.NewMockReportService(ctrl)
	h := NewReportHandler(mockReports)

	clientID := uuid.New()
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	mockReports.EXPECT().RequestReport(gomock.Any(), clientID, from, to).
		Return(&ports.ReportTicket{
			CorrelationID: "corr-123",
			ReportURL:     "/api/v1/transactions/clients/" + clientID.String() + "/report?dateTransactionStart=2024-02-01&dateTransactionEnd=2024-02-29&correlationId=corr-123",
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/?dateTransactionStart=2024-02-01&dateTransactionEnd=2024-02-29", nil)
	c.Params = gin.Params{{Key: "clientId", Value: clientID.String()}}

	h.Report(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgReportRequested, resp["message"])
	assert.Equal(t, "corr-123", resp["correlationId"])
	assert.Equal(t, "PENDING", resp["status"])
	assert.Contains(t, resp["reportUrl"], "correlationId=corr-123")
}

func TestReport_Dispatch_MissingDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReports := mocks.NewMockReportService(ctrl)
	h := NewReportHandler(mockReports)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "clientId", Value: uuid.New().String()}}

	h.Report(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReport_Poll_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReports := mocks.NewMockReportService(ctrl)
	h := NewReportHandler(mockReports)

	mockReports.EXPECT().GetReport(gomock.Any(), "corr-123").Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?correlationId=corr-123", nil)
	c.Params = gin.Params{{Key: "clientId", Value: uuid.New().String()}}

	h.Report(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgReportNotReady, resp["message"])
	assert.Equal(t, "corr-123", resp["correlationId"])
	assert.Equal(t, "NOT_FOUND", resp["status"])
}

func TestReport_Poll_Ready(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReports := mocks.NewMockReportService(ctrl)
	h := NewReportHandler(mockReports)

	clientID := uuid.New()
	mockReports.EXPECT().GetReport(gomock.Any(), "corr-123").Return(&domain.TrackedReport{
		Status: domain.ReportStatusReady,
		Report: &domain.ReportResponseEvent{
			Client: domain.ClientData{ID: clientID, Name: "Marianela Montalvo"},
			Period: domain.ReportPeriod{From: "2024-02-01", To: "2024-02-29"},
			Accounts: []domain.AccountData{
				{
					Number:         "302104560000002",
					Type:           "CHECKING",
					InitialAmount:  "1000.00",
					CurrentBalance: "1575.50",
					Transactions: []domain.TransactionSummary{
						{Type: "DEPOSIT", Date: "2024-02-10", Amount: "575.50", Balance: "1575.50"},
					},
				},
			},
			CorrelationID: "corr-123",
		},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?correlationId=corr-123", nil)
	c.Params = gin.Params{{Key: "clientId", Value: clientID.String()}}

	h.Report(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	client := resp["client"].(map[string]interface{})
	assert.Equal(t, "Marianela Montalvo", client["name"])
	accounts := resp["accounts"].([]interface{})
	require.Len(t, accounts, 1)
	account := accounts[0].(map[string]interface{})
	assert.Equal(t, "1575.50", account["currentBalance"])
	assert.Equal(t, "corr-123", resp["correlationId"])
}

func TestReport_Poll_Lost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReports := mocks.NewMockReportService(ctrl)
	h := NewReportHandler(mockReports)

	mockReports.EXPECT().GetReport(gomock.Any(), "corr-456").Return(&domain.TrackedReport{
		Status: domain.ReportStatusLost,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?correlationId=corr-456", nil)
	c.Params = gin.Params{{Key: "clientId", Value: uuid.New().String()}}

	h.Report(c)

	assert.Equal(t, http.StatusGone, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgReportLost, resp["message"])
	assert.Equal(t, "LOST", resp["status"])
}

func TestReport_InvalidClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReports := mocks.NewMockReportService(ctrl)
	h := NewReportHandler(mockReports)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "clientId", Value: "not-a-uuid"}}

	h.Report(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
