package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"userType"`

	// Relations
	ParentProfile *ParentProfile `gorm:"foreignKey:UserID" json:"parentProfile,omitempty"`
	DoulaProfile  *DoulaProfile  `gorm:"foreignKey:UserID" json:"doulaProfile,omitempty"`
	Subscription  *Subscription  `gorm:"foreignKey:UserID" json:"subscription,omitempty"`
}
