package models

// NoAxisLabel is the group title used for pieces without an organizing axis.
const NoAxisLabel = "Eixo não informado"

type OrganizingAxisModel struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Label string `json:"label" gorm:"column:label;type:varchar(100);not null"`
}
