package itemcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

type ItemReplaceInput struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Deleted bool    `json:"deleted"`
}

// ReplaceItem fully replaces an item's mutable fields.
// PUT /item/:id
func ReplaceItem(repo *repository.ItemRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid item ID"})
			return
		}

		var input ItemReplaceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := repo.Replace(uint(id), input.Name, input.Price, input.Deleted)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrValidation):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
