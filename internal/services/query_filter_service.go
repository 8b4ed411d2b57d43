package services

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSortField = errors.New("invalid sort field")

var boxSortFields = map[string]bool{
	"id":          true,
	"name":        true,
	"location":    true,
	"description": true,
	"created_at":  true,
	"updated_at":  true,
}

var itemSortFields = map[string]bool{
	"id":         true,
	"name":       true,
	"quantity":   true,
	"details":    true,
	"box_id":     true,
	"created_at": true,
	"updated_at": true,
}

// BoxFilter builds a store predicate for box listing. Free-text search is a
// case-insensitive substring match OR-combined over name, description and
// location; the location filter is AND-combined with it.
func BoxFilter(search, location string) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if search != "" {
		pattern := containsPattern(search)
		clauses = append(clauses, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if location != "" {
		clauses = append(clauses, "LOWER(location) LIKE ?")
		args = append(args, containsPattern(location))
	}
	return strings.Join(clauses, " AND "), args
}

// BoxSearchFilter matches boxes for the global search endpoint.
func BoxSearchFilter(query string) (string, []interface{}) {
	pattern := containsPattern(query)
	return "LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
		[]interface{}{pattern, pattern, pattern}
}

// ItemFilter builds a store predicate for items within a box. Quantity range
// bounds are AND-combined with the text search.
func ItemFilter(boxID, search string, minQuantity, maxQuantity *int) (string, []interface{}) {
	clauses := []string{"box_id = ?"}
	args := []interface{}{boxID}

	if search != "" {
		pattern := containsPattern(search)
		clauses = append(clauses, "(LOWER(name) LIKE ? OR LOWER(details) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if minQuantity != nil {
		clauses = append(clauses, "quantity >= ?")
		args = append(args, *minQuantity)
	}
	if maxQuantity != nil {
		clauses = append(clauses, "quantity <= ?")
		args = append(args, *maxQuantity)
	}
	return strings.Join(clauses, " AND "), args
}

// ItemSearchFilter matches items for the global search endpoint.
func ItemSearchFilter(query string) (string, []interface{}) {
	pattern := containsPattern(query)
	return "LOWER(name) LIKE ? OR LOWER(details) LIKE ?", []interface{}{pattern, pattern}
}

// OrderClause validates sort parameters against the entity's column whitelist
// and renders the store-level ordering directive. An unknown field is a
// validation error, never a store fault.
func OrderClause(sortBy, sortOrder string, sortFields map[string]bool) (string, error) {
	if sortBy == "" {
		sortBy = "name"
	}
	if !sortFields[sortBy] {
		return "", fmt.Errorf("%w: %s", ErrInvalidSortField, sortBy)
	}
	switch sortOrder {
	case "", "asc":
		return sortBy + " asc", nil
	case "desc":
		return sortBy + " desc", nil
	default:
		return "", fmt.Errorf("%w: sort_order must be asc or desc", ErrInvalidSortField)
	}
}

func BoxOrderClause(sortBy, sortOrder string) (string, error) {
	return OrderClause(sortBy, sortOrder, boxSortFields)
}

func ItemOrderClause(sortBy, sortOrder string) (string, error) {
	return OrderClause(sortBy, sortOrder, itemSortFields)
}

func containsPattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
