package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/config"
	"stockroom/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStatistics() (*dto.StatsDTO, error) {
	args := m.Called()
	stats, ok := args.Get(0).(*dto.StatsDTO)
	if !ok {
		return nil, args.Error(1)
	}
	return stats, args.Error(1)
}

func TestStatsHandler_GetStatistics(t *testing.T) {
	mockService := new(MockStatsService)
	app := fiber.New()
	handler := NewStatsHandler(mockService)
	app.Get("/api/stats", handler.GetStatistics)

	stats := &dto.StatsDTO{TotalBoxes: 2, TotalItems: 5, TotalQuantity: 42}
	mockService.On("GetStatistics").Return(stats, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.StatsDTO
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.EqualValues(t, 42, got.TotalQuantity)
	mockService.AssertExpectations(t)
}

func TestHealthHandler_Health(t *testing.T) {
	cfg := &config.Configuration{}
	cfg.Database.Driver = "sqlite"

	app := fiber.New()
	handler := NewHealthHandler(cfg)
	app.Get("/api/health", handler.Health)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "healthy", got["status"])
	assert.Equal(t, "sqlite", got["database"])
	assert.NotEmpty(t, got["timestamp"])
}
