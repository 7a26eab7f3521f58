package postgres

import (
	"context"
	"errors"
	"fmt"

	"bank-backoffice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const clientColumns = `id, name, dni, gender, age, address, phone, password_hash, active, created_at`

// ClientRepo implements ports.ClientRepository.
type ClientRepo struct {
	pool Pool
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(pool Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Create inserts a new client.
func (r *ClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, name, dni, gender, age, address, phone, password_hash, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.DNI, c.Gender, c.Age, c.Address, c.Phone,
		c.PasswordHash, c.Active, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID fetches a client by UUID.
func (r *ClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanClient(r.pool.QueryRow(ctx, query, id))
}

// GetByDNI fetches a client by national document number.
func (r *ClientRepo) GetByDNI(ctx context.Context, dni string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE dni = $1`
	return r.scanClient(r.pool.QueryRow(ctx, query, dni))
}

// List fetches all clients.
func (r *ClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c := domain.Client{}
		err := rows.Scan(
			&c.ID, &c.Name, &c.DNI, &c.Gender, &c.Age, &c.Address, &c.Phone,
			&c.PasswordHash, &c.Active, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate client rows: %w", err)
	}
	return clients, nil
}

// Update rewrites the mutable client attributes. DNI stays untouched.
func (r *ClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = $1, gender = $2, age = $3, address = $4, phone = $5 WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query, c.Name, c.Gender, c.Age, c.Address, c.Phone, c.ID)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client not found: %s", c.ID)
	}
	return nil
}

// SetActive flips the logical-deletion flag.
func (r *ClientRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE clients SET active = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("set client active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client not found: %s", id)
	}
	return nil
}

// Delete removes a client permanently.
func (r *ClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client not found: %s", id)
	}
	return nil
}

func (r *ClientRepo) scanClient(row pgx.Row) (*domain.Client, error) {
	c := &domain.Client{}
	err := row.Scan(
		&c.ID, &c.Name, &c.DNI, &c.Gender, &c.Age, &c.Address, &c.Phone,
		&c.PasswordHash, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return c, nil
}
