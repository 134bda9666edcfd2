package service

import (
	"context"
	"strings"

	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/repository"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

// ClientService coordinates client CRUD.
type ClientService struct {
	clients repository.ClientRepository
}

// NewClientService builds the service.
func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// Create validates and persists a client.
func (s *ClientService) Create(ctx context.Context, client *domain.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return apperrors.NewValidationError("client name required", nil)
	}
	return s.clients.Create(ctx, client)
}

// Update validates and persists changes to a client.
func (s *ClientService) Update(ctx context.Context, client *domain.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return apperrors.NewValidationError("client name required", nil)
	}
	return s.clients.Update(ctx, client)
}

// Delete removes a client.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

// Get fetches a client by id.
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// List returns all clients.
func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}
