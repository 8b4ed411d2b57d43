package models

type Box struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null;index" json:"name"`
	Location    string `gorm:"type:varchar(255);index" json:"location"`
	Description string `gorm:"type:text" json:"description"`
	Items       []Item `gorm:"foreignKey:BoxID" json:"items,omitempty"`
}
