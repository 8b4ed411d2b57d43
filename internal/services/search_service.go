package services

import (
	"stockroom/internal/dto"
	"stockroom/internal/repository"
)

const DefaultSearchLimit = 50

type SearchService interface {
	GlobalSearch(query string, limit int) ([]dto.SearchResultDTO, error)
}

type searchServiceImpl struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
	log      LogService
}

func NewSearchService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository, log LogService) SearchService {
	return &searchServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo, log: log}
}

// GlobalSearch fans the query out to boxes and items. Each collection gets
// floor(limit/2) result slots; an odd remainder is dropped, so a limit below
// 2 leaves no slots at all. Box hits come first, then item hits, each group
// in store-native order.
func (s *searchServiceImpl) GlobalSearch(query string, limit int) ([]dto.SearchResultDTO, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	perCollection := limit / 2
	if perCollection == 0 {
		return []dto.SearchResultDTO{}, nil
	}

	boxWhere, boxArgs := BoxSearchFilter(query)
	boxes, err := s.boxRepo.Search(boxWhere, boxArgs, "", perCollection)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SearchResultDTO, 0, len(boxes))
	for i := range boxes {
		results = append(results, dto.SearchResultDTO{
			Type:     "box",
			ID:       boxes[i].ID,
			Name:     boxes[i].Name,
			Details:  boxes[i].Description,
			Location: boxes[i].Location,
		})
	}

	itemWhere, itemArgs := ItemSearchFilter(query)
	items, err := s.itemRepo.Search(itemWhere, itemArgs, "", perCollection)
	if err != nil {
		return nil, err
	}

	for i := range items {
		// A dangling box reference gets a placeholder, not an error.
		boxName := "Unknown Box"
		box, err := s.boxRepo.FindByID(items[i].BoxID)
		if err != nil {
			return nil, err
		}
		if box != nil {
			boxName = box.Name
		} else {
			s.log.Log.WithField("item_id", items[i].ID).Warn("item references a missing box")
		}
		quantity := items[i].Quantity
		results = append(results, dto.SearchResultDTO{
			Type:     "item",
			ID:       items[i].ID,
			Name:     items[i].Name,
			Details:  items[i].Details,
			BoxID:    items[i].BoxID,
			BoxName:  boxName,
			Quantity: &quantity,
		})
	}
	return results, nil
}
