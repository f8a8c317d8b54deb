package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

// AddItemToCart adds one unit of an item to a cart and returns the updated
// cart. The underlying mutation is atomic and retried internally on a write
// conflict.
// POST /cart/:cart_id/add/:item_id
func AddItemToCart(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid cart ID"})
			return
		}
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid item ID"})
			return
		}

		cart, err := repo.AddItem(uint(cartID), uint(itemID))
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			case errors.Is(err, repository.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"error": "Add to cart was not applied, please retry"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}
