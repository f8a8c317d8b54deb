package cartcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

// CreateCart creates a new empty cart and sets the Location header to it.
// POST /cart
func CreateCart(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := repo.Create()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to create cart"})
			return
		}
		c.Header("Location", fmt.Sprintf("/cart/%d", cart.ID))
		c.JSON(http.StatusCreated, cart)
	}
}

// GetCart returns a single cart with its lines and total.
// GET /cart/:id
func GetCart(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid cart ID"})
			return
		}

		cart, err := repo.Get(uint(id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GetCarts returns a page of carts with optional total-price bounds. The
// min_quantity/max_quantity params are accepted and validated but do not
// filter; see DESIGN.md.
// GET /cart?limit&offset&min_price&max_price&min_quantity&max_quantity
func GetCarts(repo *repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := repository.CartListParams{}

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
		if v := c.Query("min_quantity"); v != "" {
			mq, err := strconv.Atoi(v)
			if err != nil || mq < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid min_quantity"})
				return
			}
			params.MinQuantity = &mq
		}
		if v := c.Query("max_quantity"); v != "" {
			mq, err := strconv.Atoi(v)
			if err != nil || mq < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid max_quantity"})
				return
			}
			params.MaxQuantity = &mq
		}

		carts, err := repo.List(params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}
