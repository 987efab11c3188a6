package product_controller

import (
	"net/http"

	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProductFilters godoc
// @Summary Get available product filters
// @Description Get the filter surface for the storefront (categories with counts, price range, sort modes)
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/products/filters [get]
func GetProductFilters(c *gin.Context) {
	counts := store.CategoryCounts()

	categories := make([]models.FilterOption, 0, len(models.Categories))
	for _, name := range models.Categories {
		categories = append(categories, models.FilterOption{
			Label: name,
			Value: name,
			Count: counts[name],
		})
	}

	filters := models.ProductFilters{
		Categories: categories,
		PriceRange: store.PriceRange(),
		SortModes:  []string{models.SortNewest, models.SortPriceAsc, models.SortPriceDesc},
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully", filters))
}
