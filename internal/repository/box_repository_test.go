package repository

import (
	"testing"

	"stockroom/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.Box{}, &models.Item{})
	assert.NoError(t, err)
	return db
}

func TestBoxRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	box := &models.Box{Name: "Garage Shelf", Location: "garage"}
	err := boxRepo.Create(box)

	assert.NoError(t, err)
	assert.NotEmpty(t, box.ID)
	assert.NotZero(t, box.CreatedAt)
}

func TestBoxRepository_FindByID_Missing(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	box, err := boxRepo.FindByID("no-such-id")

	assert.NoError(t, err)
	assert.Nil(t, box)
}

func TestBoxRepository_Search_CaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	assert.NoError(t, boxRepo.Create(&models.Box{Name: "Garage Shelf"}))
	assert.NoError(t, boxRepo.Create(&models.Box{Name: "Kitchen Cabinet"}))

	clause := "(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?)"
	for _, query := range []string{"garage", "shelf", "age shelf"} {
		pattern := "%" + query + "%"
		boxes, err := boxRepo.Search(clause, []interface{}{pattern, pattern, pattern}, "", 0)
		assert.NoError(t, err)
		assert.Len(t, boxes, 1, "query %q", query)
		assert.Equal(t, "Garage Shelf", boxes[0].Name)
	}
}

func TestBoxRepository_Search_OrderDesc(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	for _, name := range []string{"Attic", "Cellar", "Basement"} {
		assert.NoError(t, boxRepo.Create(&models.Box{Name: name}))
	}

	boxes, err := boxRepo.Search("", nil, "name desc", 0)

	assert.NoError(t, err)
	assert.Len(t, boxes, 3)
	assert.Equal(t, "Cellar", boxes[0].Name)
	assert.Equal(t, "Basement", boxes[1].Name)
	assert.Equal(t, "Attic", boxes[2].Name)
}

func TestBoxRepository_Search_Limit(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	for _, name := range []string{"Box A", "Box B", "Box C"} {
		assert.NoError(t, boxRepo.Create(&models.Box{Name: name}))
	}

	boxes, err := boxRepo.Search("", nil, "", 2)

	assert.NoError(t, err)
	assert.Len(t, boxes, 2)
}

func TestBoxRepository_DeleteWithItems_Cascades(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)
	itemRepo := NewItemRepository(db)

	box := &models.Box{Name: "To Delete"}
	assert.NoError(t, boxRepo.Create(box))

	other := &models.Box{Name: "Keep"}
	assert.NoError(t, boxRepo.Create(other))

	itemIDs := make([]string, 0, 3)
	for _, name := range []string{"Hammer", "Wrench", "Pliers"} {
		item := &models.Item{Name: name, Quantity: 1, BoxID: box.ID}
		assert.NoError(t, itemRepo.Create(item))
		itemIDs = append(itemIDs, item.ID)
	}
	kept := &models.Item{Name: "Saw", Quantity: 1, BoxID: other.ID}
	assert.NoError(t, itemRepo.Create(kept))

	err := boxRepo.DeleteWithItems(box.ID)
	assert.NoError(t, err)

	deletedBox, err := boxRepo.FindByID(box.ID)
	assert.NoError(t, err)
	assert.Nil(t, deletedBox)

	for _, id := range itemIDs {
		item, err := itemRepo.FindByID(id)
		assert.NoError(t, err)
		assert.Nil(t, item)
	}

	survivor, err := itemRepo.FindByID(kept.ID)
	assert.NoError(t, err)
	assert.NotNil(t, survivor)
}

func TestBoxRepository_Update_RefreshesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	box := &models.Box{Name: "Original"}
	assert.NoError(t, boxRepo.Create(box))
	createdAt := box.CreatedAt
	firstUpdate := box.UpdatedAt

	box.Name = "Renamed"
	assert.NoError(t, boxRepo.Update(box))

	updated, err := boxRepo.FindByID(box.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, createdAt.Unix(), updated.CreatedAt.Unix())
	assert.False(t, updated.UpdatedAt.Before(firstUpdate))
}

func TestBoxRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)

	count, err := boxRepo.Count()
	assert.NoError(t, err)
	assert.Zero(t, count)

	assert.NoError(t, boxRepo.Create(&models.Box{Name: "Box 1"}))
	assert.NoError(t, boxRepo.Create(&models.Box{Name: "Box 2"}))

	count, err = boxRepo.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
