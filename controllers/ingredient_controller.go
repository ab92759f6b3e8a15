package controllers

import (
	"net/http"

	"github.com/Mayur-aditya-007/AyuVeda-Website/services"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	svc *services.IngredientService
}

func NewIngredientController(svc *services.IngredientService) *IngredientController {
	return &IngredientController{svc: svc}
}

// Search serves the explore page: ?q= searches by name, no query returns
// the seeded default feed.
func (ic *IngredientController) Search(c *gin.Context) {
	query := c.Query("q")

	var err error
	var results interface{}
	if query == "" {
		results, err = ic.svc.Feed()
	} else {
		results, err = ic.svc.Search(query)
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": results})
}
