package models

type UserModel struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string `json:"username" gorm:"column:username;type:varchar(255);uniqueIndex;not null"`
	Password    string `json:"-" gorm:"type:varchar(100);not null"`
	IsSuperuser bool   `json:"isSuperuser" gorm:"column:is_superuser;not null"`
	Restricted  bool   `json:"restricted" gorm:"column:restricted;not null"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	IsSuperuser bool   `json:"isSuperuser"`
	Restricted  bool   `json:"restricted"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
