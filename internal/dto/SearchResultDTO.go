package dto

type SearchResultDTO struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Details  string `json:"details,omitempty"`
	BoxID    string `json:"box_id,omitempty"`
	BoxName  string `json:"box_name,omitempty"`
	Location string `json:"location,omitempty"`
	Quantity *int   `json:"quantity,omitempty"`
}
