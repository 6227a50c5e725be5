package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"postcard/app/models"
	"postcard/app/repositories"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// PostRepository implements repositories.PostRepository on SQLite.
// Posts are stored as a JSON body keyed by ID.
type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	body, err := json.Marshal(post)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`INSERT INTO posts(id, body) VALUES(?, ?)`, post.ID, string(body))
	if isUniqueViolation(err) {
		return repositories.ErrAlreadyExists
	}
	return err
}

func (r *PostRepository) GetByID(id string) (*models.Post, error) {
	var body string
	err := r.db.QueryRow(`SELECT body FROM posts WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := json.Unmarshal([]byte(body), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) List() ([]*models.Post, error) {
	rows, err := r.db.Query(`SELECT body FROM posts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var post models.Post
		if err := json.Unmarshal([]byte(body), &post); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// CommentRepository implements repositories.CommentRepository on SQLite.
type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	_, err := r.db.Exec(
		`INSERT INTO comments(id, post_id, content, created_at) VALUES(?, ?, ?, ?)`,
		comment.ID, comment.PostID, comment.Content, comment.CreatedAt.UnixNano(),
	)
	if isUniqueViolation(err) {
		return repositories.ErrAlreadyExists
	}
	return err
}

func (r *CommentRepository) GetByID(id string) (*models.Comment, error) {
	row := r.db.QueryRow(`SELECT id, post_id, content, created_at FROM comments WHERE id = ?`, id)
	comment, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	return comment, err
}

func (r *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	rows, err := r.db.Query(
		`SELECT id, post_id, content, created_at FROM comments WHERE post_id = ? ORDER BY seq`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(s scanner) (*models.Comment, error) {
	var (
		comment models.Comment
		created int64
	)
	if err := s.Scan(&comment.ID, &comment.PostID, &comment.Content, &created); err != nil {
		return nil, err
	}
	comment.CreatedAt = time.Unix(0, created)
	return &comment, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
