package routes

import (
	"net/http"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the item and cart
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	items := repository.NewItemRepository(db)
	carts := repository.NewCartRepository(db)

	SetupItemRoutes(r, items)
	SetupCartRoutes(r, carts)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
