package repository

import (
	"stockroom/internal/models"

	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	Search(whereClause string, args []interface{}, order string, limit int) ([]models.Box, error)
	DeleteWithItems(id string) error
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) Search(whereClause string, args []interface{}, order string, limit int) ([]models.Box, error) {
	var boxes []models.Box
	query := r.db.Model(&models.Box{})
	if whereClause != "" {
		query = query.Where(whereClause, args...)
	}
	if order != "" {
		query = query.Order(order)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&boxes).Error; err != nil {
		return nil, err
	}
	return boxes, nil
}

// DeleteWithItems removes a box together with every item referencing it.
// Items go first so a failure mid-way leaves an empty box rather than
// orphaned items.
func (r *BoxRepositoryImpl[T]) DeleteWithItems(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("box_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Box{}, "id = ?", id).Error
	})
}
