// Package auth は管理者の認証とログインセッションを扱います。
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"pizzapension/internal/database"
	"pizzapension/internal/models"
)

// ErrInvalidCredentials はユーザーが存在しないかパスワードが違う場合に返されます
var ErrInvalidCredentials = errors.New("invalid username or password")

// DefaultSessionTTL はログイン後セッションが有効な期間です
const DefaultSessionTTL = 7 * 24 * time.Hour

// Session はログイントークンとユーザーを結び付けます
type Session struct {
	Token     string
	UserID    int64
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// UserStore は Service が必要とする database.UserStore の部分です
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// verifyPassword はテストで差し替えます
var verifyPassword = VerifyPassword

// dummyHash は存在しないユーザーの照合に使うハッシュを一度だけ生成します
var dummyHash = sync.OnceValue(func() string {
	hashed, err := HashPassword("pizzapension-dummy-password")
	if err != nil {
		panic(err)
	}
	return hashed
})

// Service は管理者のログインとログアウトを行います
type Service struct {
	users    UserStore
	sessions *gocache.Cache
	ttl      time.Duration
}

// NewService は ttl で期限切れになるセッションを持つ Service を作成します。
// cleanup が 0 の場合、期限切れセッションを掃除するゴルーチンは起動しません
// (期限は参照時に判定されます)。
func NewService(users UserStore, ttl, cleanup time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		users:    users,
		sessions: gocache.New(ttl, cleanup),
		ttl:      ttl,
	}
}

// CreateUser は管理者アカウントを作成します (コマンドラインからのみ使用)
func (s *Service) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, errors.New("username and password are required")
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, username, hashed)
}

// Login は認証情報を確認してセッションを開始します
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			// 既存ユーザーと同じだけ時間をかける
			verifyPassword(dummyHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !verifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions.Set(sess.Token, sess, s.ttl)
	return sess, nil
}

// Logout はセッションを破棄します。不明なトークンや空のトークンは無視します
func (s *Service) Logout(token string) {
	if token == "" {
		return
	}
	s.sessions.Delete(token)
}

// Session はトークンに対応する有効なセッションを返します
func (s *Service) Session(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	v, ok := s.sessions.Get(token)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	return sess, ok
}

// IsAuthenticated はトークンが有効なセッションのものかを返します
func (s *Service) IsAuthenticated(token string) bool {
	_, ok := s.Session(token)
	return ok
}
