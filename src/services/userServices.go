package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/middleware"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("usuário ou senha inválidos")

type UserService struct {
	db       *gorm.DB
	secret   string
	tokenTTL time.Duration
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB, secret string, tokenTTL time.Duration) *UserService {
	return &UserService{db: db, secret: secret, tokenTTL: tokenTTL}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser hashes the password and stores a new user
func (s *UserService) CreateUser(req models.RegisterRequest) (*models.UserModel, error) {
	req.Username = strings.TrimSpace(req.Username)
	errs := forms.NewErrors()
	if errs.Required("username", req.Username) {
		errs.MaxLength("username", req.Username, 150)
	}
	if errs.Required("password", req.Password) && len(req.Password) < 8 {
		errs.Add("password", "A senha deve ter pelo menos 8 caracteres.")
	}
	if !errs.HasErrors() {
		var count int64
		if err := s.db.Model(&models.UserModel{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			errs.Add("username", "Já existe um usuário com este nome.")
		}
	}
	if errs.HasErrors() {
		return nil, &forms.ValidationError{Form: "usuario", Errors: errs}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.UserModel{
		Username:    req.Username,
		Password:    string(hashedPassword),
		IsSuperuser: req.IsSuperuser,
		Restricted:  req.Restricted,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureSuperuser creates the user or promotes it and resets its password.
func (s *UserService) EnsureSuperuser(username, password string) (*models.UserModel, bool, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}
	var user models.UserModel
	err = s.db.Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.UserModel{Username: username, Password: string(hashedPassword), IsSuperuser: true}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, false, err
		}
		return &user, true, nil
	case err != nil:
		return nil, false, err
	}
	user.Password = string(hashedPassword)
	user.IsSuperuser = true
	if err := s.db.Save(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, false, nil
}

// DeleteUser deletes a User record by ID
func (s *UserService) DeleteUser(id int) error {
	result := s.db.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &ErrNotFound{Entity: "Usuário"}
	}
	return nil
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(username, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", result.Error
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := middleware.NewClaims(middleware.Identity{
		UserID:      user.Id,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
		Restricted:  user.Restricted,
	}, s.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
