package routes

import (
	cartcontroller "github.com/akopylov/shop-api/controllers/cart"
	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(r *gin.Engine, repo *repository.CartRepository) {
	g := r.Group("/cart")
	{
		g.POST("", cartcontroller.CreateCart(repo))
		g.GET("", cartcontroller.GetCarts(repo))
		g.GET("/:id", cartcontroller.GetCart(repo))
		g.POST("/:cart_id/add/:item_id", cartcontroller.AddItemToCart(repo))
	}
}
