package product_controller

import (
	"net/http"
	"strconv"

	"github.com/Violet-Essentials/violet-storefront-backend/catalog"
	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Get storefront products
// @Description Retrieve the catalog filtered by category and price band, ordered by the requested sort mode.
// @Tags Storefront - Products
// @Produce json
// @Param category query []string false "Category names (repeatable)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)" default(5000)
// @Param sort query string false "Sort mode (newest | price-asc | price-desc)" default(newest)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	spec := parseFilterState(c)
	view := catalog.ComputeView(store.Products(), spec)

	result := models.ProductListResult{
		Products: view,
		Total:    len(view),
		Filters:  spec,
	}
	// An empty view is valid output; pair it with the reset-to-default
	// affordance so the client can offer "clear all filters".
	if len(view) == 0 {
		defaults := models.DefaultFilterState()
		result.Reset = &defaults
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", result))
}

// parseFilterState reads the filter query params into a normalized
// FilterState. Unparseable numbers fall back to the defaults.
func parseFilterState(c *gin.Context) models.FilterState {
	spec := models.DefaultFilterState()

	if categories := c.QueryArray("category"); len(categories) > 0 {
		spec.Categories = categories
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			spec.MinPrice = v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			spec.MaxPrice = v
		}
	}
	spec.Sort = c.DefaultQuery("sort", models.SortNewest)

	spec.Normalize()
	return spec
}
