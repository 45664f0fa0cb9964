package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"inkpress/sessions"
	"inkpress/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid username or password"

// Login verifies credentials and opens a session. Unknown usernames and
// wrong passwords get the same message.
func Login(store *storage.Storage, sess *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		user, err := store.UserByUsername(username)
		if errors.Is(err, storage.ErrNotFound) {
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": invalidCredentials})
			return
		}
		if err != nil {
			log.Printf("Error fetching user: %v", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": invalidCredentials})
			return
		}

		session := sess.Create(user.Username)
		maxAge := int(time.Until(session.ExpiresAt).Seconds())
		c.SetCookie("session_id", session.Token, maxAge, "/", "", false, true)

		c.Redirect(http.StatusFound, "/")
	}
}

func Signup(store *storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if username == "" || password == "" {
			c.HTML(http.StatusOK, "signup.html", gin.H{"Error": "Username and password are required"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		err = store.InsertUser(username, string(hash))
		if errors.Is(err, storage.ErrUsernameTaken) {
			c.HTML(http.StatusOK, "signup.html", gin.H{"Error": "Username already taken"})
			return
		}
		if err != nil {
			log.Printf("Error creating user: %v", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		c.Redirect(http.StatusFound, "/login")
	}
}

func Logout(sess *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie("session_id"); err == nil {
			sess.Destroy(cookie)
		}

		c.SetCookie("session_id", "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/")
	}
}
