package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"inkpress/storage"

	"github.com/gin-gonic/gin"
)

// CreatePost saves an optional image upload and inserts the post row. The
// stored filename keeps the multipart field name, a timestamp, and the
// original extension so concurrent uploads never collide.
func CreatePost(store *storage.Storage, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		content := c.PostForm("content")

		var image *string
		file, err := c.FormFile("image")
		if err == nil {
			ext := filepath.Ext(file.Filename)
			filename := fmt.Sprintf("image-%d%s", time.Now().UnixNano(), ext)

			if err := c.SaveUploadedFile(file, filepath.Join(uploadsDir, filename)); err != nil {
				log.Println("Save file error:", err)
				c.String(http.StatusInternalServerError, "Internal Server Error")
				return
			}

			publicPath := "/uploads/" + filename
			image = &publicPath
		}

		if _, err := store.InsertPost(title, content, image); err != nil {
			log.Println("Insert error:", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		c.Redirect(http.StatusFound, "/")
	}
}

// DeletePost removes the row first and the image file second. The database
// is the source of truth; a file that is already gone does not fail the
// request.
func DeletePost(store *storage.Storage, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid post id")
			return
		}

		image, hasImage, err := store.PostImage(id)
		if err != nil {
			log.Printf("Error fetching post image: %v", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if err := store.DeletePost(id); err != nil {
			log.Printf("Error deleting post %d: %v", id, err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if hasImage {
			path := filepath.Join(uploadsDir, filepath.Base(image))
			if err := os.Remove(path); err != nil {
				log.Printf("Error deleting image file %s: %v", image, err)
			} else {
				log.Printf("Deleted image file: %s", image)
			}
		}

		c.Redirect(http.StatusFound, "/")
	}
}
