package routes

import (
	"inkpress/controllers"
	"inkpress/handlers"
	"inkpress/middleware"
	"inkpress/sessions"
	"inkpress/storage"

	"github.com/gin-gonic/gin"
)

func InkpressRouter(r *gin.Engine, store *storage.Storage, sess *sessions.Store, uploadsDir string) {
	r.StaticFile("/style.css", "./static/css/style.css")
	r.Static("/uploads", uploadsDir)

	r.GET("/", handlers.Index(store, sess))
	r.GET("/login", handlers.LoginForm)
	r.POST("/login", controllers.Login(store, sess))
	r.GET("/signup", handlers.SignupForm)
	r.POST("/signup", controllers.Signup(store))
	r.GET("/logout", controllers.Logout(sess))

	authorized := middleware.Authorized(sess)
	r.GET("/add_post", authorized, handlers.NewPostForm)
	r.POST("/add_post", authorized, controllers.CreatePost(store, uploadsDir))
	r.POST("/delete_post/:id", authorized, controllers.DeletePost(store, uploadsDir))
}
