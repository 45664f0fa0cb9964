package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"inkpress/models"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// Storage wraps the shared database handle. One instance is opened at
// startup and passed to every handler that needs it.
type Storage struct {
	db *sql.DB
}

func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("DB connection error: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Database connection established successfully")
	return s, nil
}

func (s *Storage) createTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			content TEXT,
			image TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("posts table creation error: %w", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE,
			password TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("users table creation error: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPosts() ([]models.Post, error) {
	rows, err := s.db.Query("SELECT id, title, content, image FROM posts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list posts error: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		var image sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &image); err != nil {
			return nil, fmt.Errorf("scan post error: %w", err)
		}
		if image.Valid {
			p.Image = image.String
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts error: %w", err)
	}

	return posts, nil
}

// PostImage returns the image path stored for a post. ok is false when the
// post does not exist or carries no image.
func (s *Storage) PostImage(id int) (string, bool, error) {
	var image sql.NullString
	err := s.db.QueryRow("SELECT image FROM posts WHERE id = ?", id).Scan(&image)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("fetch post image error: %w", err)
	}
	return image.String, image.Valid && image.String != "", nil
}

// InsertPost stores a new post. image is nil when the post has no upload.
func (s *Storage) InsertPost(title, content string, image *string) (int64, error) {
	var dbImage interface{}
	if image != nil {
		dbImage = *image
	}

	result, err := s.db.Exec(
		"INSERT INTO posts (title, content, image) VALUES (?, ?, ?)",
		title, content, dbImage,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert post error: %w", err)
	}
	return id, nil
}

func (s *Storage) DeletePost(id int) error {
	_, err := s.db.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post error: %w", err)
	}
	return nil
}

func (s *Storage) UserByUsername(username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		"SELECT id, username, password FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("fetch user error: %w", err)
	}
	return u, nil
}

// InsertUser stores a new user. passwordHash must already be hashed; the
// storage layer never sees plaintext passwords.
func (s *Storage) InsertUser(username, passwordHash string) error {
	_, err := s.db.Exec(
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, passwordHash,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user error: %w", err)
	}
	return nil
}
