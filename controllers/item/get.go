package itemcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

// GetItem returns a single item by id.
// GET /item/:id
func GetItem(repo *repository.ItemRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid item ID"})
			return
		}

		item, err := repo.Get(uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
