package controllers

import (
	"net/http"
	"strconv"

	"github.com/NUGEP/NUGEP-Backend/src/models"
	"github.com/NUGEP/NUGEP-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// GetAllUsers handles GET requests to retrieve all user records
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.service.GetAllUsers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// CreateUser handles POST requests to register a new user
func (c *UserController) CreateUser(ctx *gin.Context) {
	var user models.UserModel
	if err := ctx.ShouldBindJSON(&user); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateUser(&user)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, models.RegisterResponse{
		ID:       created.Id,
		Username: created.Username,
		Name:     created.Name,
		Role:     created.Role,
	})
}

// DeleteUser handles DELETE requests to remove a user record
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := c.service.DeleteUser(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// AuthenticateUser handles POST requests to log a user in and issue a token
func (c *UserController) AuthenticateUser(ctx *gin.Context) {
	var credentials models.LoginRequest
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.AuthenticateUser(credentials.Username, credentials.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "usuário ou senha inválidos"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
