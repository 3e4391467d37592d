package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mreyes/gearvault-backend/internal/database"
	"github.com/mreyes/gearvault-backend/internal/middleware"
	"github.com/mreyes/gearvault-backend/internal/services"
)

const (
	// MaxUploadFiles is the per-request attachment limit.
	MaxUploadFiles = 5
	// maxUploadBytes bounds the whole multipart body.
	maxUploadBytes = 25 << 20
)

// UploadGearImages accepts up to MaxUploadFiles image attachments, stores
// each in the blob store under a key namespaced by owner and gear, and
// appends the resulting URLs to the gear's image list.
func UploadGearImages(w http.ResponseWriter, r *http.Request) {
	if blobStore == nil {
		writeError(w, http.StatusInternalServerError, "File upload service not available")
		return
	}

	user := middleware.UserFrom(r.Context())

	gearID, ok := gearIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}
	if len(files) > MaxUploadFiles {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("At most %d files can be uploaded per request", MaxUploadFiles))
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := findOwnedGear(ctx, gearID, user.ID); err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Gear not found")
			return
		}
		serverError(w, "upload images: gear lookup", err)
		return
	}

	// Already-stored objects are not rolled back on a later failure.
	urls := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			serverError(w, "upload images: open file", err)
			return
		}

		key := services.ObjectKey(user.ID.Hex(), gearID.Hex(), header.Filename)
		url, err := blobStore.Upload(r.Context(), file, key, header.Header.Get("Content-Type"))
		file.Close()
		if err != nil {
			serverError(w, "upload images: blob store", err)
			return
		}
		urls = append(urls, url)
	}

	// $push with $each keeps concurrent uploads to the same gear from
	// clobbering each other's URLs.
	_, err := database.DB.Collection(database.GearCollection).UpdateOne(ctx,
		bson.M{"_id": gearID, "user_id": user.ID},
		bson.M{
			"$push": bson.M{"images": bson.M{"$each": urls}},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		serverError(w, "upload images: append urls", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Images uploaded successfully",
		"images":  urls,
	})
}
