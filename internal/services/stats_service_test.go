package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_GetStatistics_EmptyStore(t *testing.T) {
	mockBoxRepo := new(MockBoxRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewStatsService(mockBoxRepo, mockItemRepo)

	mockBoxRepo.On("Count").Return(int64(0), nil)
	mockItemRepo.On("Count").Return(int64(0), nil)
	mockItemRepo.On("SumQuantity").Return(int64(0), nil)

	stats, err := service.GetStatistics()

	assert.NoError(t, err)
	assert.Zero(t, stats.TotalBoxes)
	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.TotalQuantity)
	assert.False(t, stats.Timestamp.IsZero())
}

func TestStatsService_GetStatistics(t *testing.T) {
	mockBoxRepo := new(MockBoxRepository)
	mockItemRepo := new(MockItemRepository)
	service := NewStatsService(mockBoxRepo, mockItemRepo)

	mockBoxRepo.On("Count").Return(int64(2), nil)
	mockItemRepo.On("Count").Return(int64(5), nil)
	mockItemRepo.On("SumQuantity").Return(int64(42), nil)

	stats, err := service.GetStatistics()

	assert.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalBoxes)
	assert.EqualValues(t, 5, stats.TotalItems)
	assert.EqualValues(t, 42, stats.TotalQuantity)
}
