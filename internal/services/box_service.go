package services

import (
	"stockroom/internal/dto"
	"stockroom/internal/mapper"
	"stockroom/internal/models"
	"stockroom/internal/repository"
)

type BoxService interface {
	GetBoxes(search, location, sortBy, sortOrder string) ([]dto.BoxGetDTO, error)
	CreateBox(name, location, description string) (*dto.BoxGetDTO, error)
	GetBoxByID(id string) (*dto.BoxGetDTO, error)
	UpdateBox(id string, name, location, description *string) (*dto.BoxGetDTO, error)
	DeleteBox(id string) error
}

type boxServiceImpl struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
	log      LogService
}

func NewBoxService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository, log LogService) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo, log: log}
}

// GetBoxes lists boxes matching the filters, each enriched with its current
// item count. The count is computed per box on every read, never stored.
func (s *boxServiceImpl) GetBoxes(search, location, sortBy, sortOrder string) ([]dto.BoxGetDTO, error) {
	order, err := BoxOrderClause(sortBy, sortOrder)
	if err != nil {
		return nil, err
	}
	whereClause, args := BoxFilter(search, location)
	boxes, err := s.boxRepo.Search(whereClause, args, order, 0)
	if err != nil {
		return nil, err
	}

	result := make([]dto.BoxGetDTO, 0, len(boxes))
	for i := range boxes {
		count, err := s.itemRepo.CountByBoxID(boxes[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, mapper.ToBoxGetDTO(&boxes[i], count))
	}
	return result, nil
}

func (s *boxServiceImpl) CreateBox(name, location, description string) (*dto.BoxGetDTO, error) {
	box := &models.Box{Name: name, Location: location, Description: description}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, err
	}
	created := mapper.ToBoxGetDTO(box, 0)
	return &created, nil
}

func (s *boxServiceImpl) GetBoxByID(id string) (*dto.BoxGetDTO, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, models.ErrBoxNotFound
	}
	count, err := s.itemRepo.CountByBoxID(id)
	if err != nil {
		return nil, err
	}
	found := mapper.ToBoxGetDTO(box, count)
	return &found, nil
}

// UpdateBox applies only the provided fields; nil means "leave unchanged".
func (s *boxServiceImpl) UpdateBox(id string, name, location, description *string) (*dto.BoxGetDTO, error) {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, models.ErrBoxNotFound
	}
	if name != nil {
		box.Name = *name
	}
	if location != nil {
		box.Location = *location
	}
	if description != nil {
		box.Description = *description
	}
	if err := s.boxRepo.Update(box); err != nil {
		return nil, err
	}
	count, err := s.itemRepo.CountByBoxID(id)
	if err != nil {
		return nil, err
	}
	updated := mapper.ToBoxGetDTO(box, count)
	return &updated, nil
}

// DeleteBox cascades to the box's items; the repository runs both deletions
// in one transaction.
func (s *boxServiceImpl) DeleteBox(id string) error {
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return err
	}
	if box == nil {
		return models.ErrBoxNotFound
	}
	if err := s.boxRepo.DeleteWithItems(id); err != nil {
		return err
	}
	s.log.Log.WithField("box_id", id).Info("box deleted with its items")
	return nil
}
