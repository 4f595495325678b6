package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pizzapension/internal/models"
)

// ErrUserNotFound は指定されたユーザー名のユーザーが存在しない場合に返されます
var ErrUserNotFound = errors.New("user not found")

// UserStore は users テーブルを管理します
type UserStore struct {
	db *Database
}

// NewUserStore は db を使う UserStore を作成します
func NewUserStore(db *Database) *UserStore {
	return &UserStore{db: db}
}

// Create はハッシュ化済みのパスワードでユーザーを登録します
func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (models.User, error) {
	query := s.db.DB.Rebind("INSERT INTO users (username, password) VALUES (?, ?) RETURNING id")

	var id int64
	if err := s.db.DB.QueryRowxContext(ctx, query, username, passwordHash).Scan(&id); err != nil {
		return models.User{}, fmt.Errorf("%w: insert user: %w", ErrStorage, err)
	}
	return models.User{ID: id, Username: username, Password: passwordHash}, nil
}

// FindByUsername はパスワードハッシュを含めてユーザーを取得します
func (s *UserStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	query := s.db.DB.Rebind("SELECT id, username, password FROM users WHERE username = ?")
	if err := s.db.DB.GetContext(ctx, &u, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: query user: %w", ErrStorage, err)
	}
	return u, nil
}

// Exists はユーザーが存在するかを返します
func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := s.db.DB.Rebind("SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)")
	if err := s.db.DB.GetContext(ctx, &exists, query, username); err != nil {
		return false, fmt.Errorf("%w: check user: %w", ErrStorage, err)
	}
	return exists, nil
}
