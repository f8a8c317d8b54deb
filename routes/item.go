package routes

import (
	itemcontroller "github.com/akopylov/shop-api/controllers/item"
	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

func SetupItemRoutes(r *gin.Engine, repo *repository.ItemRepository) {
	g := r.Group("/item")
	{
		g.POST("", itemcontroller.CreateItem(repo))
		g.GET("", itemcontroller.GetItems(repo))
		g.GET("/:id", itemcontroller.GetItem(repo))
		g.PUT("/:id", itemcontroller.ReplaceItem(repo))
		g.PATCH("/:id", itemcontroller.PatchItem(repo))
		g.DELETE("/:id", itemcontroller.DeleteItem(repo))
	}
}
