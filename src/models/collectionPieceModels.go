package models

type CollectionPieceModel struct {
	ID                     int                    `json:"id" gorm:"primaryKey;autoIncrement"`
	Denomination           string                 `json:"denomination" gorm:"column:denomination;type:varchar(100);not null"`
	Authors                []PersonModel          `json:"authors" gorm:"many2many:collection_piece_authors;joinForeignKey:PieceID;joinReferences:PersonID"`
	TitleByAuthor          string                 `json:"titleByAuthor" gorm:"column:title_by_author;type:varchar(100);not null"`
	RegistryNumber         *string                `json:"registryNumber" gorm:"column:registry_number;type:varchar(10)"`
	OrderNumber            *string                `json:"orderNumber" gorm:"column:order_number;type:varchar(3)"`
	Status                 PieceStatus            `json:"status" gorm:"column:status;type:varchar(2);not null"`
	Thesaurus              *string                `json:"thesaurus" gorm:"column:thesaurus;type:varchar(100)"`
	Description            string                 `json:"description" gorm:"column:description;type:text;not null"`
	Dimensions             *string                `json:"dimensions" gorm:"column:dimensions;type:varchar(30)"`
	MaterialTechnique      string                 `json:"materialTechnique" gorm:"column:material_technique;type:text;not null"`
	ConservationState      ConservationState      `json:"conservationState" gorm:"column:conservation_state;type:varchar(3);not null"`
	ProductionPlace        string                 `json:"productionPlace" gorm:"column:production_place;type:varchar(200);not null"`
	ProductionStartDate    *Date                  `json:"productionStartDate" gorm:"column:production_start_date"`
	ProductionEndDate      *Date                  `json:"productionEndDate" gorm:"column:production_end_date"`
	CanReproduce           bool                   `json:"canReproduce" gorm:"column:can_reproduce;not null"`
	ReproductionConditions *string                `json:"reproductionConditions" gorm:"column:reproduction_conditions;type:text"`
	Typology               Typology               `json:"typology" gorm:"column:typology;type:varchar(3);not null"`
	AcquisitionMethod      AcquisitionMethod      `json:"acquisitionMethod" gorm:"column:acquisition_method;type:varchar(3);not null"`
	OrganizingAxisID       *int                   `json:"organizingAxisId" gorm:"column:organizing_axis_id;index"`
	OrganizingAxis         *OrganizingAxisModel   `json:"organizingAxis,omitempty" gorm:"foreignKey:OrganizingAxisID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ExhibitionID           *int                   `json:"exhibitionId" gorm:"column:exhibition_id;index"`
	Exhibition             *ExhibitionModel       `json:"exhibition,omitempty" gorm:"foreignKey:ExhibitionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	InternalLocationID     *int                   `json:"internalLocationId" gorm:"column:internal_location_id;index"`
	InternalLocation       *InternalLocationModel `json:"internalLocation,omitempty" gorm:"foreignKey:InternalLocationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Published              bool                   `json:"published" gorm:"column:published;not null"`
	Media                  []MediaModel           `json:"media,omitempty" gorm:"foreignKey:PieceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	History                []HistoryEventModel    `json:"history,omitempty" gorm:"foreignKey:PieceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// AxisLabel returns the organizing axis label, or NoAxisLabel when unset.
func (p CollectionPieceModel) AxisLabel() string {
	if p.OrganizingAxis == nil {
		return NoAxisLabel
	}
	return p.OrganizingAxis.Label
}
