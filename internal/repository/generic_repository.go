package repository

import (
	"errors"

	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// FindByID returns (nil, nil) when no record has the given id.
func (r *GenericRepositoryImpl[T]) FindByID(id string) (*T, error) {
	var entity T
	err := r.db.First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Delete(id string) error {
	var entity T
	return r.db.Delete(&entity, "id = ?", id).Error
}

func (r *GenericRepositoryImpl[T]) Count() (int64, error) {
	var entity T
	var count int64
	err := r.db.Model(&entity).Count(&count).Error
	return count, err
}
