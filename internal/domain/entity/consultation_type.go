package entity

// ConsultationType is a catalog entry. Appointments reference it by name only.
type ConsultationType struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"type:varchar(100);not null" json:"name"`
	Description     string `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes int    `gorm:"not null;default:30" json:"duration_minutes"`
	IsActive        bool   `gorm:"not null;default:true" json:"is_active"`
}

func (ConsultationType) TableName() string {
	return "consultation_types"
}
