package models

type InternalLocationModel struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Label string `json:"label" gorm:"column:label;type:varchar(100);not null"`
}
