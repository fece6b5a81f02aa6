package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// ImageController serves public landing-page imagery; no auth required.
type ImageController struct {
	Photos *services.PhotoSearchService
}

func NewImageController(photos *services.PhotoSearchService) *ImageController {
	return &ImageController{Photos: photos}
}

// GET /images/search?query=fitness&count=6
func (i *ImageController) Search(c *gin.Context) {
	photos := i.Photos.Search(c.DefaultQuery("query", "fitness"), intQuery(c, "count", 6))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": photos})
}

// GET /images/random?query=fitness+gym
func (i *ImageController) Random(c *gin.Context) {
	photo := i.Photos.Random(c.DefaultQuery("query", "fitness gym"))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": photo})
}
