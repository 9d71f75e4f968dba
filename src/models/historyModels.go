package models

type EventTypeModel struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string `json:"description" gorm:"column:description;type:varchar(100);not null"`
}

type HistoryEventModel struct {
	ID            int             `json:"id" gorm:"primaryKey;autoIncrement"`
	PieceID       int             `json:"pieceId" gorm:"column:piece_id;index;not null"`
	EventTypeID   int             `json:"eventTypeId" gorm:"column:event_type_id;index;not null"`
	EventType     *EventTypeModel `json:"eventType,omitempty" gorm:"foreignKey:EventTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ResponsibleID *int            `json:"responsibleId" gorm:"column:responsible_id;index"`
	Responsible   *PersonModel    `json:"responsible,omitempty" gorm:"foreignKey:ResponsibleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Description   *string         `json:"description" gorm:"column:description;type:text"`
	StartDate     Date            `json:"startDate" gorm:"column:start_date;not null"`
	EndDate       Date            `json:"endDate" gorm:"column:end_date;not null"`
}
