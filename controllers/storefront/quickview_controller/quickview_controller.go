package quickview_controller

import (
	"errors"
	"net/http"

	"github.com/Violet-Essentials/violet-storefront-backend/catalog"
	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/Violet-Essentials/violet-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	store     *catalog.Store
	quickView *services.QuickViewService
)

func Init(s *catalog.Store, qv *services.QuickViewService) {
	store = s
	quickView = qv
}

// OpenQuickView godoc
// @Summary Open a quick view
// @Description Start a quick-view session for a product with no size selected
// @Tags Storefront - Quick View
// @Accept json
// @Produce json
// @Param request body models.QuickViewOpenRequest true "Product to view"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/quickview [post]
func OpenQuickView(c *gin.Context) {
	var req models.QuickViewOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	product, ok := store.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	snapshot := quickView.Open(product)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Quick view opened", snapshot))
}

// GetQuickView godoc
// @Summary Get quick-view state
// @Tags Storefront - Quick View
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/quickview/{id} [get]
func GetQuickView(c *gin.Context) {
	snapshot, err := quickView.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quick view session not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quick view fetched", snapshot))
}

// SelectSize godoc
// @Summary Select a size
// @Description Record the chosen size; add-to-cart stays disabled until one is selected
// @Tags Storefront - Quick View
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.QuickViewSizeRequest true "Size"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/quickview/{id}/size [put]
func SelectSize(c *gin.Context) {
	var req models.QuickViewSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	snapshot, err := quickView.SelectSize(c.Param("id"), req.Size)
	switch {
	case errors.Is(err, services.ErrQuickViewNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quick view session not found"))
	case errors.Is(err, services.ErrInvalidSize):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid size"))
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to select size"))
	default:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Size selected", snapshot))
	}
}

// AddToCart godoc
// @Summary Add to cart
// @Description Confirm the quick view; the session closes itself shortly after
// @Tags Storefront - Quick View
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /store/quickview/{id}/cart [post]
func AddToCart(c *gin.Context) {
	snapshot, err := quickView.AddToCart(c.Param("id"))
	switch {
	case errors.Is(err, services.ErrQuickViewNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quick view session not found"))
	case errors.Is(err, services.ErrSizeRequired):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Select a size first"))
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
	default:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Added to bag", snapshot))
	}
}

// DismissQuickView godoc
// @Summary Dismiss a quick view
// @Description Close the session from any state, cancelling a pending auto-close
// @Tags Storefront - Quick View
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/quickview/{id} [delete]
func DismissQuickView(c *gin.Context) {
	if err := quickView.Dismiss(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Quick view session not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quick view dismissed", nil))
}
