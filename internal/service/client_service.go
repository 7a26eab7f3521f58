package service

import (
	"context"
	"time"

	"bank-backoffice/internal/core/domain"
	"bank-backoffice/internal/core/ports"
	"bank-backoffice/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ClientServiceImpl implements ports.ClientService.
type ClientServiceImpl struct {
	clientRepo ports.ClientRepository
	hasher     ports.PasswordHasher
	log        zerolog.Logger
}

// NewClientService creates a new ClientServiceImpl.
func NewClientService(clientRepo ports.ClientRepository, hasher ports.PasswordHasher, log zerolog.Logger) *ClientServiceImpl {
	return &ClientServiceImpl{clientRepo: clientRepo, hasher: hasher, log: log}
}

// Create registers a new client. The DNI must be unused; the password is
// stored only as an Argon2id hash.
func (s *ClientServiceImpl) Create(ctx context.Context, req ports.CreateClientRequest) (*domain.Client, error) {
	existing, err := s.clientRepo.GetByDNI(ctx, req.DNI)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "client", err)
	}
	if existing != nil {
		return nil, apperror.ErrClientConflict("DNI")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	client := &domain.Client{
		ID:           uuid.New(),
		Name:         req.Name,
		DNI:          req.DNI,
		Gender:       req.Gender,
		Age:          req.Age,
		Address:      req.Address,
		Phone:        req.Phone,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperror.ErrPersistence("create", "client", err)
	}

	s.log.Info().Str("client_id", client.ID.String()).Msg("client created")
	return client, nil
}

// GetByID fetches a client.
func (s *ClientServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "client", err)
	}
	if client == nil {
		return nil, apperror.ErrClientNotFound()
	}
	return client, nil
}

// List fetches all clients.
func (s *ClientServiceImpl) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "clients", err)
	}
	return clients, nil
}

// Update rewrites the mutable client attributes. Inactive clients reject
// updates.
func (s *ClientServiceImpl) Update(ctx context.Context, req ports.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "client", err)
	}
	if client == nil {
		return nil, apperror.ErrClientNotFound()
	}
	if !client.Active {
		return nil, apperror.ErrClientInactive()
	}

	client.Name = req.Name
	client.Gender = req.Gender
	client.Age = req.Age
	client.Address = req.Address
	client.Phone = req.Phone

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, apperror.ErrPersistence("update", "client", err)
	}
	return client, nil
}

// SetActive flips the logical-deletion flag and returns the updated client.
func (s *ClientServiceImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrPersistence("retrieve", "client", err)
	}
	if client == nil {
		return nil, apperror.ErrClientNotFound()
	}

	if err := s.clientRepo.SetActive(ctx, id, active); err != nil {
		return nil, apperror.ErrPersistence("update", "client", err)
	}
	client.Active = active
	return client, nil
}

// Delete removes a client permanently.
func (s *ClientServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrPersistence("retrieve", "client", err)
	}
	if client == nil {
		return apperror.ErrClientNotFound()
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return apperror.ErrPersistence("delete", "client", err)
	}

	s.log.Info().Str("client_id", id.String()).Msg("client deleted")
	return nil
}
