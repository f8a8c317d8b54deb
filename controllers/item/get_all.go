package itemcontroller

import (
	"net/http"
	"strconv"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

// GetItems returns a page of items with optional price bounds.
// GET /item?limit&offset&min_price&max_price&show_deleted
func GetItems(repo *repository.ItemRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := repository.ItemListParams{}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid limit"})
			return
		}
		params.Limit = limit

		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid offset"})
			return
		}
		params.Offset = offset

		if v := c.Query("min_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil || mp < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid min_price"})
				return
			}
			params.MinPrice = &mp
		}
		if v := c.Query("max_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil || mp < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid max_price"})
				return
			}
			params.MaxPrice = &mp
		}

		showDeleted, err := strconv.ParseBool(c.DefaultQuery("show_deleted", "false"))
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid show_deleted"})
			return
		}
		params.ShowDeleted = showDeleted

		items, err := repo.List(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
