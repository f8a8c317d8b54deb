package itemcontroller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

type ItemInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreateItem creates a new item and sets the Location header to it.
// POST /item
func CreateItem(repo *repository.ItemRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := repo.Create(input.Name, input.Price)
		if err != nil {
			if errors.Is(err, repository.ErrValidation) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			}
			return
		}

		c.Header("Location", fmt.Sprintf("/item/%d", item.ID))
		c.JSON(http.StatusCreated, item)
	}
}
