package models

import "fmt"

type ExhibitionModel struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:name;type:varchar(200);not null"`
	Description string `json:"description" gorm:"column:description;type:text;not null"`
	StartDate   Date   `json:"startDate" gorm:"column:start_date;not null"`
	EndDate     Date   `json:"endDate" gorm:"column:end_date;not null"`
	Location    string `json:"location" gorm:"column:location;type:varchar(255);not null"`
	Organizer   string `json:"organizer" gorm:"column:organizer;type:varchar(200);not null"`
	Physical    bool   `json:"physical" gorm:"column:physical;not null"`
}

// Title renders the exhibition as "<name> de dd/mm/yyyy à dd/mm/yyyy".
func (e ExhibitionModel) Title() string {
	return fmt.Sprintf("%s de %s à %s", e.Name, e.StartDate.Display(), e.EndDate.Display())
}
