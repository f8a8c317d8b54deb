package itemcontroller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/akopylov/shop-api/repository"
	"github.com/gin-gonic/gin"
)

type ItemPatchInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// PatchItem updates only the fields present in the body. The body schema is
// strict: any field outside {name, price} rejects the whole request with no
// mutation applied.
// PATCH /item/:id
func PatchItem(repo *repository.ItemRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid item ID"})
			return
		}

		var input ItemPatchInput
		dec := json.NewDecoder(c.Request.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := repo.Patch(uint(id), input.Name, input.Price)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.Status(http.StatusNotModified)
			case errors.Is(err, repository.ErrValidation):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to patch item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
