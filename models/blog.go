package models

type Post struct {
	ID      int
	Title   string
	Content string
	Image   string
}

type User struct {
	ID       int
	Username string
	Password string
}
