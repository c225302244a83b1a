package models

import "time"

// Contract is an agreed service engagement between a parent and a doula.
type Contract struct {
	BaseModel
	ParentID  string         `gorm:"not null;index" json:"parentId"`
	DoulaID   string         `gorm:"not null;index" json:"doulaId"`
	StartDate time.Time      `gorm:"not null" json:"startDate"`
	EndDate   *time.Time     `json:"endDate"`
	Status    ContractStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Parent *User `gorm:"foreignKey:ParentID" json:"-"`
	Doula  *User `gorm:"foreignKey:DoulaID" json:"-"`
}
