package mapper

import (
	"stockroom/internal/dto"
	"stockroom/internal/models"
)

func ToBoxGetDTO(box *models.Box, itemCount int64) dto.BoxGetDTO {
	return dto.BoxGetDTO{
		ID:          box.ID,
		Name:        box.Name,
		Location:    box.Location,
		Description: box.Description,
		CreatedAt:   box.CreatedAt,
		UpdatedAt:   box.UpdatedAt,
		ItemCount:   itemCount,
	}
}
