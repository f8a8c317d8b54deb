package itemcontroller

import (
	"net/http"
	"strconv"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

// DeleteItem flags an item as deleted. Idempotent: deleting a missing or
// already-deleted id still succeeds.
// DELETE /item/:id
func DeleteItem(repo *repository.ItemRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid item ID"})
			return
		}

		if err := repo.SoftDelete(uint(id)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}
