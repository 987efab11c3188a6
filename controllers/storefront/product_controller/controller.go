package product_controller

import (
	"context"
	"mime/multipart"

	"github.com/Violet-Essentials/violet-storefront-backend/catalog"
)

// ImageUploader is the boundary that turns an uploaded listing image into
// a de-referenceable URL.
type ImageUploader interface {
	UploadListingImage(ctx context.Context, file multipart.File, filename string) (string, error)
}

var (
	store         *catalog.Store
	imageUploader ImageUploader
)

// Init wires the controller against the catalog store and the image
// upload boundary.
func Init(s *catalog.Store, uploader ImageUploader) {
	store = s
	imageUploader = uploader
}
