package repository

import (
	"stockroom/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	Search(whereClause string, args []interface{}, order string, limit int) ([]models.Item, error)
	CountByBoxID(boxID string) (int64, error)
	SumQuantity() (int64, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) Search(whereClause string, args []interface{}, order string, limit int) ([]models.Item, error) {
	var items []models.Item
	query := r.db.Model(&models.Item{})
	if whereClause != "" {
		query = query.Where(whereClause, args...)
	}
	if order != "" {
		query = query.Order(order)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) CountByBoxID(boxID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Where("box_id = ?", boxID).Count(&count).Error
	return count, err
}

// SumQuantity returns 0 for an empty items table, not NULL.
func (r *ItemRepositoryImpl[T]) SumQuantity() (int64, error) {
	var total int64
	err := r.db.Model(&models.Item{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}
