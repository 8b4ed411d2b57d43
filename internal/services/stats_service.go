package services

import (
	"time"

	"stockroom/internal/dto"
	"stockroom/internal/repository"
)

type StatsService interface {
	GetStatistics() (*dto.StatsDTO, error)
}

type statsServiceImpl struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
}

func NewStatsService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository) StatsService {
	return &statsServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo}
}

func (s *statsServiceImpl) GetStatistics() (*dto.StatsDTO, error) {
	totalBoxes, err := s.boxRepo.Count()
	if err != nil {
		return nil, err
	}
	totalItems, err := s.itemRepo.Count()
	if err != nil {
		return nil, err
	}
	totalQuantity, err := s.itemRepo.SumQuantity()
	if err != nil {
		return nil, err
	}
	return &dto.StatsDTO{
		TotalBoxes:    totalBoxes,
		TotalItems:    totalItems,
		TotalQuantity: totalQuantity,
		Timestamp:     time.Now().UTC(),
	}, nil
}
