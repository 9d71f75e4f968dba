package models

type PersonModel struct {
	ID            int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string  `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Phones        *string `json:"phones" gorm:"column:phones;type:varchar(40)"`
	Email         *string `json:"email" gorm:"column:email;type:varchar(100)"`
	Birthplace    *string `json:"birthplace" gorm:"column:birthplace;type:varchar(40)"`
	Nationality   *string `json:"nationality" gorm:"column:nationality;type:varchar(20)"`
	BirthDate     *Date   `json:"birthDate" gorm:"column:birth_date"`
	Biography     *string `json:"biography" gorm:"column:biography;type:text"`
	NaturalPerson bool    `json:"naturalPerson" gorm:"column:natural_person;not null"`
	IsAuthor      bool    `json:"isAuthor" gorm:"column:is_author;not null"`
}
