package models

// Comment is a parent's review of a doula, tied to a completed contract.
// One comment per (contract, parent) pair.
type Comment struct {
	BaseModel
	ContractID string `gorm:"not null;uniqueIndex:idx_comments_contract_parent" json:"contractId"`
	ParentID   string `gorm:"not null;uniqueIndex:idx_comments_contract_parent" json:"parentId"`
	DoulaID    string `gorm:"not null;index" json:"doulaId"`
	ParentName string `json:"parentName"`
	Comment    string `gorm:"type:varchar(160);not null" json:"comment"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`

	// Relations
	Contract *Contract `gorm:"foreignKey:ContractID" json:"-"`
}
