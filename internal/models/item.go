package models

type Item struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null;index" json:"name"`
	Quantity int    `json:"quantity"`
	Details  string `gorm:"type:text;default:''" json:"details"`
	BoxID    string `gorm:"type:varchar(36);index;not null" json:"box_id"`
}
