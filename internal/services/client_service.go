package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"clientapi/internal/dto"
	"clientapi/internal/logger"
	"clientapi/internal/models"
	"clientapi/internal/repositories"
)

// ClientRepository is the persistence contract the service depends on.
// FindByID signals absence with a nil client; DeleteByID and Save report a
// missing row with repositories.ErrNotFound.
type ClientRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Client, error)
	FindAll(ctx context.Context, req models.PageRequest) (models.Page[models.Client], error)
	FindByIncome(ctx context.Context, threshold float64, req models.PageRequest) (models.Page[models.Client], error)
	Save(ctx context.Context, c *models.Client) (*models.Client, error)
	DeleteByID(ctx context.Context, id int64) error
}

type ClientService struct {
	Repo   ClientRepository
	logger *zap.Logger
}

func NewClientService(repo ClientRepository, log *zap.Logger) *ClientService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClientService{Repo: repo, logger: log.Named("client_service")}
}

func (s *ClientService) FindByID(ctx context.Context, id int64) (*dto.ClientDTO, error) {
	c, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		logger.FromContext(ctx, s.logger).Debug("client not found", zap.Int64("id", id))
		return nil, notFound(id)
	}
	out := dto.NewClientDTO(c)
	return &out, nil
}

func (s *ClientService) FindAllPaged(ctx context.Context, req models.PageRequest) (models.Page[dto.ClientDTO], error) {
	page, err := s.Repo.FindAll(ctx, req)
	if err != nil {
		return models.Page[dto.ClientDTO]{}, err
	}
	return dto.ClientPage(page), nil
}

func (s *ClientService) FindByIncome(ctx context.Context, req models.PageRequest, income float64) (models.Page[dto.ClientDTO], error) {
	page, err := s.Repo.FindByIncome(ctx, income, req)
	if err != nil {
		return models.Page[dto.ClientDTO]{}, err
	}
	return dto.ClientPage(page), nil
}

// Insert stores a new client. Any id carried by in is ignored.
func (s *ClientService) Insert(ctx context.Context, in dto.ClientDTO) (*dto.ClientDTO, error) {
	entity := in.ToEntity()
	entity.ID = 0

	saved, err := s.Repo.Save(ctx, entity)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx, s.logger).Info("client created", zap.Int64("id", saved.ID))
	out := dto.NewClientDTO(saved)
	return &out, nil
}

// Update overwrites the client stored under id. The id in the body is ignored.
func (s *ClientService) Update(ctx context.Context, id int64, in dto.ClientDTO) (*dto.ClientDTO, error) {
	entity, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		logger.FromContext(ctx, s.logger).Debug("update of unknown client", zap.Int64("id", id))
		return nil, notFound(id)
	}
	copyToEntity(in, entity)
	entity.ID = id

	saved, err := s.Repo.Save(ctx, entity)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx, s.logger).Info("client updated", zap.Int64("id", id))
	out := dto.NewClientDTO(saved)
	return &out, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(id)
	}
	if err != nil {
		return err
	}
	logger.FromContext(ctx, s.logger).Info("client deleted", zap.Int64("id", id))
	return nil
}

func copyToEntity(in dto.ClientDTO, entity *models.Client) {
	entity.Name = in.Name
	entity.CPF = in.CPF
	entity.Income = in.Income
	entity.BirthDate = in.BirthDate
	entity.Status = in.Status
}
