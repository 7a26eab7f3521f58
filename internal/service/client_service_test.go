package service

import (
	"context"
	"testing"
	"time"

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

type clientTestDeps struct {
	svc    *ClientServiceImpl
	repo   *mocks.MockClientRepository
	hasher *mocks.MockPasswordHasher
	ctrl   *gomock.Controller
}

func setupClientService(t *testing.T) *clientTestDeps {
	ctrl := gomock.NewController(t)
	d := &clientTestDeps{
		repo:   mocks.NewMockClientRepository(ctrl),
		hasher: mocks.NewMockPasswordHasher(ctrl),
		ctrl:   ctrl,
	}
	d.svc = NewClientService(d.repo, d.hasher, zerolog.Nop())
	return d
}

func testClient() *domain.Client {
	return &domain.Client{
		ID:        uuid.New(),
		Name:      "Jose Lema",
		DNI:       "1710034065",
		Gender:    "M",
		Age:       34,
		Address:   "Otavalo sn y principal",
		Phone:     "098254785",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
}

func TestClientService_Create(t *testing.T) {
	d := setupClientService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.repo.EXPECT().GetByDNI(ctx, "1710034065").Return(nil, nil)
	d.hasher.EXPECT().Hash("s3cr3tpass").Return("$argon2id$hash", nil)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	client, err := d.svc.Create(ctx, ports.CreateClientRequest{
		Name:     "Jose Lema",
		DNI:      "1710034065",
		Gender:   "M",
		Age:      34,
		Address:  "Otavalo sn y principal",
		Phone:    "098254785",
		Password: "s3cr3tpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "$argon2id$hash", client.PasswordHash)
	assert.True(t, client.Active)
}

func TestClientService_Create_DuplicateDNI(t *testing.T) {
	d := setupClientService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.repo.EXPECT().GetByDNI(ctx, "1710034065").Return(testClient(), nil)

	_, err := d.svc.Create(ctx, ports.CreateClientRequest{DNI: "1710034065", Password: "x"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CLI_003", appErr.Code)
}

func TestClientService_Update(t *testing.T) {
	d := setupClientService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	client := testClient()

	d.repo.EXPECT().GetByID(ctx, client.ID).Return(client, nil)
	d.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	got, err := d.svc.Update(ctx, ports.UpdateClientRequest{
		ID:      client.ID,
		Name:    "Jose Lema Jr",
		Gender:  "M",
		Age:     35,
		Address: "new address",
		Phone:   "098000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jose Lema Jr", got.Name)
	assert.Equal(t, "1710034065", got.DNI) // DNI untouched
}

func TestClientService_Update_Inactive(t *testing.T) {
	d := setupClientService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	client := testClient()
	client.Active = false

	d.repo.EXPECT().GetByID(ctx, client.ID).Return(client, nil)

	_, err := d.svc.Update(ctx, ports.UpdateClientRequest{ID: client.ID})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CLI_002", appErr.Code)
}

func TestClientService_Update_NotFound(t *testing.T) {
	d := setupClientService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.repo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := d.svc.Update(ctx, ports.UpdateClientRequest{ID: id})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CLI_001", appErr.Code)
}

func TestClientService_SetActive(t *testing.T) {
	d := setupClientService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	client := testClient()

	d.repo.EXPECT().GetByID(ctx, client.ID).Return(client, nil)
	d.repo.EXPECT().SetActive(ctx, client.ID, false).Return(nil)

	got, err := d.svc.SetActive(ctx, client.ID, false)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestClientService_Delete_NotFound(t *testing.T) {
	d := setupClientService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.repo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	err := d.svc.Delete(ctx, id)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CLI_001", appErr.Code)
}
