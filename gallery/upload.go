package gallery

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"vibeholidays/db"
	"vibeholidays/models"
	"vibeholidays/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	_ "golang.org/x/image/webp"
)

const (
	uploadDir    = "./uploads"
	thumbDir     = "./uploads/thumbs"
	maxUploadMem = 10 << 20 // 10 MB
	thumbWidth   = 480
)

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadGalleryImage accepts a multipart image, stores it under
// ./uploads with a generated name, writes a JPEG thumbnail, and
// creates the gallery record in one step.
func UploadGalleryImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxUploadMem); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	if !allowedImageMIMEs[header.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, GIF, WebP.")
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "category is required")
		return
	}

	img, _, err := image.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not decode image")
		return
	}

	for _, dir := range []string{uploadDir, thumbDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Storage unavailable")
			return
		}
	}

	name := utils.GetUUID() + ".jpg"
	fullPath := filepath.Join(uploadDir, name)
	thumbPath := filepath.Join(thumbDir, name)

	out, err := os.Create(fullPath)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 90}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save thumbnail")
		return
	}

	order, _ := strconv.Atoi(r.FormValue("order"))
	item := models.GalleryItem{
		ItemID:      "g" + utils.GenerateRandomString(10),
		URL:         "/uploads/" + name,
		Category:    category,
		Caption:     strings.TrimSpace(r.FormValue("caption")),
		Destination: strings.TrimSpace(r.FormValue("destination")),
		Order:       order,
		CreatedAt:   time.Now(),
	}

	if _, err := db.GalleryCollection.InsertOne(r.Context(), item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"item":    item,
		"thumb":   fmt.Sprintf("/uploads/thumbs/%s", name),
	})
}
