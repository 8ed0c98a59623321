package services

import (
	"errors"
	"strings"
	"time"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/middleware"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB, audit *AuditService) *UserService {
	return &UserService{db: db, audit: audit}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers() ([]models.UserModel, error) {
	var users []models.UserModel
	result := s.db.Find(&users)
	if result.Error != nil {
		return nil, apperrors.Persistence("list users", result.Error)
	}
	return users, nil
}

// CreateUser creates a new User record in the database
func (s *UserService) CreateUser(user *models.UserModel) (*models.UserModel, error) {
	if strings.TrimSpace(user.Username) == "" || strings.TrimSpace(user.Password) == "" {
		return nil, apperrors.Validation("usuário e senha são obrigatórios")
	}
	if user.Name == "" {
		user.Name = user.Username
	}
	if user.Role == "" {
		user.Role = models.RoleTechnician
	}

	// Hash the password before saving
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)

	result := s.db.Create(user)
	if result.Error != nil {
		return nil, apperrors.Persistence("create user", result.Error)
	}
	return user, nil
}

// DeleteUser deletes a User record by ID
func (s *UserService) DeleteUser(id int) error {
	result := s.db.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return apperrors.Persistence("delete user", result.Error)
	}
	return nil
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(username, password string) (string, error) {
	var user models.UserModel
	result := s.db.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", apperrors.Validation("usuário ou senha inválidos")
		}
		return "", apperrors.Persistence("load user", result.Error)
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Validation("usuário ou senha inválidos")
	}

	claims := jwt.MapClaims{
		"id":   user.Id,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", err
	}

	s.audit.Record(models.Actor{Name: user.Name, Role: user.Role}, models.ActionLogin,
		"Usuário acessou o sistema")

	return tokenString, nil
}
