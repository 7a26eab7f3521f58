package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/internal/core/ports/mocks"
	"bank-backoffice/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAccountService(t *testing.T) (*AccountServiceImpl, *mocks.MockAccountRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)
	return NewAccountService(repo, zerolog.Nop()), repo, ctrl
}

var accountNumberRe = regexp.MustCompile(`^30210456\d{8}$`)

func TestAccountService_Create(t *testing.T) {
	svc, repo, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clientID := uuid.New()

	repo.EXPECT().ExistsByNumber(ctx, gomock.Any()).Return(false, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := svc.Create(ctx, ports.CreateAccountRequest{
		ClientID:      clientID,
		Type:          domain.AccountTypeSavings,
		InitialAmount: 100_000,
	})
	require.NoError(t, err)
	assert.Regexp(t, accountNumberRe, account.Number)
	assert.Equal(t, int64(100_000), account.InitialAmount)
	assert.Equal(t, int64(100_000), account.CurrentBalance)
	assert.Equal(t, clientID, account.ClientID)
	assert.True(t, account.Active)
}

func TestAccountService_Create_InvalidType(t *testing.T) {
	svc, _, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	_, err := svc.Create(context.Background(), ports.CreateAccountRequest{
		ClientID: uuid.New(),
		Type:     domain.AccountType("CREDIT"),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACC_004", appErr.Code)
}

func TestAccountService_Create_NegativeInitialAmount(t *testing.T) {
	svc, _, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	_, err := svc.Create(context.Background(), ports.CreateAccountRequest{
		ClientID:      uuid.New(),
		Type:          domain.AccountTypeChecking,
		InitialAmount: -1,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TRX_001", appErr.Code)
}

func TestAccountService_Create_NumberCollisionRetries(t *testing.T) {
	svc, repo, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// First mint collides, second succeeds.
	gomock.InOrder(
		repo.EXPECT().ExistsByNumber(ctx, gomock.Any()).Return(true, nil),
		repo.EXPECT().ExistsByNumber(ctx, gomock.Any()).Return(false, nil),
	)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	_, err := svc.Create(ctx, ports.CreateAccountRequest{
		ClientID: uuid.New(),
		Type:     domain.AccountTypeSavings,
	})
	require.NoError(t, err)
}

func TestAccountService_Create_NumberConflictExhausted(t *testing.T) {
	svc, repo, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().ExistsByNumber(ctx, gomock.Any()).Return(true, nil).Times(numberMaxAttempts)

	_, err := svc.Create(ctx, ports.CreateAccountRequest{
		ClientID: uuid.New(),
		Type:     domain.AccountTypeSavings,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACC_003", appErr.Code)
}

func TestAccountService_GetByID_NotFound(t *testing.T) {
	svc, repo, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	repo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := svc.GetByID(ctx, id)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACC_001", appErr.Code)
}

func TestAccountService_SetActive(t *testing.T) {
	svc, repo, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	account := activeAccount(0)

	repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	repo.EXPECT().SetActive(ctx, account.ID, false).Return(nil)

	got, err := svc.SetActive(ctx, account.ID, false)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestAccountService_Delete(t *testing.T) {
	svc, repo, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	account := activeAccount(0)

	repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	repo.EXPECT().Delete(ctx, account.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, account.ID))
}

func TestAccountService_Delete_RepoError(t *testing.T) {
	svc, repo, ctrl := setupAccountService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	account := activeAccount(0)

	repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)
	repo.EXPECT().Delete(ctx, account.ID).Return(errors.New("db down"))

	err := svc.Delete(ctx, account.ID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}
