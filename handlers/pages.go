package handlers

import (
	"log"
	"net/http"

	"inkpress/sessions"
	"inkpress/storage"

	"github.com/gin-gonic/gin"
)

// Index renders the post list. The template also gets the auth flag so the
// page can show the right navigation for the current visitor.
func Index(store *storage.Storage, sess *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := store.ListPosts()
		if err != nil {
			log.Printf("Error listing posts: %v", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		loggedIn := false
		if cookie, err := c.Cookie("session_id"); err == nil {
			_, loggedIn = sess.Get(cookie)
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"Posts":    posts,
			"LoggedIn": loggedIn,
		})
	}
}

func NewPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_post.html", nil)
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": ""})
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Error": ""})
}
