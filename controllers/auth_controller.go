package controllers

import (
	"log"
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

type RegisterInput struct {
	Name     string        `json:"name" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=6"`
	Height   float64       `json:"height"`
	Goals    *models.Goals `json:"goals"`
}

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := a.Users.Register(c.Request.Context(), input.Name, input.Email, input.Password, input.Height, input.Goals)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if user.Notifications {
		if err := utils.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("welcome email to %s not sent: %v", user.Email, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    publicUser(user),
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, token, err := a.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    publicUser(user),
	})
}

func publicUser(u *models.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"avatar":        u.Avatar,
		"goals":         u.Goals,
		"height":        u.Height,
		"notifications": u.Notifications,
	}
}
