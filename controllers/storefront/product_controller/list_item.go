package product_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Violet-Essentials/violet-storefront-backend/config"
	"github.com/Violet-Essentials/violet-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ListItem godoc
// @Summary List a new item
// @Description Submit a user listing. Requires name, brand, price and an image (multipart file or image_url); category defaults to the first enumerated one.
// @Tags Storefront - Products
// @Accept mpfd
// @Produce json
// @Param name formData string true "Product name"
// @Param brand formData string true "Brand"
// @Param price formData string true "Price (non-negative number)"
// @Param category formData string false "Category (one of the enumerated set)"
// @Param image formData file false "Product image"
// @Param image_url formData string false "Image URL, accepted instead of an upload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/products [post]
func ListItem(c *gin.Context) {
	var req models.ListingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Brand = strings.TrimSpace(req.Brand)
	req.Price = strings.TrimSpace(req.Price)

	imageFile, _ := c.FormFile("image")

	// All of name, brand, price and an image must be present; a partial
	// submission never touches the catalog.
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Brand == "" {
		missing = append(missing, "brand")
	}
	if req.Price == "" {
		missing = append(missing, "price")
	}
	if imageFile == nil && strings.TrimSpace(req.ImageURL) == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Price must be a non-negative number"))
		return
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = models.Categories[0]
	}
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category: "+category))
		return
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	if imageFile != nil {
		file, err := imageFile.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image upload"))
			return
		}
		defer file.Close()

		ctx, cancel := config.WithTimeout(c.Request.Context())
		defer cancel()

		imageURL, err = imageUploader.UploadListingImage(ctx, file, "")
		if err != nil {
			log.Printf("[listing] image upload failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload image"))
			return
		}
	}

	// User listings are tagged as new unconditionally, so they lead the
	// default view.
	product := store.Add(models.Product{
		Name:     req.Name,
		Brand:    req.Brand,
		Price:    price,
		Category: category,
		Image:    imageURL,
		IsNew:    true,
	})
	log.Printf("[listing] new item %q by %s (%s) at R%.2f", product.Name, product.Brand, product.ID, product.Price)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item listed successfully", product))
}
