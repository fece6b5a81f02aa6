package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users     *services.UserService
	Summaries *services.SummaryService
}

func NewUserController(users *services.UserService, summaries *services.SummaryService) *UserController {
	return &UserController{Users: users, Summaries: summaries}
}

func (u *UserController) GetProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := u.Users.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(user)})
}

// UpdateProfile accepts only the allow-listed fields in ProfileInput;
// anything else in the body is silently dropped.
func (u *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := u.Users.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": publicUser(user)})
}

func (u *UserController) Dashboard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	overview := u.Summaries.Dashboard(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": overview})
}
