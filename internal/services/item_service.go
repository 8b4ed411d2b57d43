package services

import (
	"stockroom/internal/models"
	"stockroom/internal/repository"
)

type ItemService interface {
	GetItemsInBox(boxID, search string, minQuantity, maxQuantity *int, sortBy, sortOrder string) ([]models.Item, error)
	CreateItem(name string, quantity int, details, boxID string) (*models.Item, error)
	GetItemByID(id string) (*models.Item, error)
	UpdateItem(id string, name *string, quantity *int, details *string) (*models.Item, error)
	DeleteItem(id string) error
}

type itemServiceImpl struct {
	itemRepo repository.ItemRepository
	boxRepo  repository.BoxRepository
}

func NewItemService(itemRepo repository.ItemRepository, boxRepo repository.BoxRepository) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo, boxRepo: boxRepo}
}

func (s *itemServiceImpl) GetItemsInBox(boxID, search string, minQuantity, maxQuantity *int, sortBy, sortOrder string) ([]models.Item, error) {
	box, err := s.boxRepo.FindByID(boxID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, models.ErrBoxNotFound
	}
	order, err := ItemOrderClause(sortBy, sortOrder)
	if err != nil {
		return nil, err
	}
	whereClause, args := ItemFilter(boxID, search, minQuantity, maxQuantity)
	return s.itemRepo.Search(whereClause, args, order, 0)
}

// CreateItem checks the referenced box before inserting; nothing is persisted
// when the box does not exist.
func (s *itemServiceImpl) CreateItem(name string, quantity int, details, boxID string) (*models.Item, error) {
	box, err := s.boxRepo.FindByID(boxID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, models.ErrBoxNotFound
	}
	item := &models.Item{Name: name, Quantity: quantity, Details: details, BoxID: boxID}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) GetItemByID(id string) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, models.ErrItemNotFound
	}
	return item, nil
}

// UpdateItem applies only the provided fields; nil means "leave unchanged".
func (s *itemServiceImpl) UpdateItem(id string, name *string, quantity *int, details *string) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, models.ErrItemNotFound
	}
	if name != nil {
		item.Name = *name
	}
	if quantity != nil {
		item.Quantity = *quantity
	}
	if details != nil {
		item.Details = *details
	}
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(id string) error {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return models.ErrItemNotFound
	}
	return s.itemRepo.Delete(id)
}
