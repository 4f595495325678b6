package database

import (
	"context"
	"fmt"
	"time"

	"pizzapension/internal/models"
)

// RegistrationStore は registrations テーブルを管理します
type RegistrationStore struct {
	db  *Database
	now func() time.Time
}

// registrationRow は registrations テーブルの一行です
type registrationRow struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Pizza     string    `db:"pizza"`
	Drink     string    `db:"drink"`
	CreatedAt timestamp `db:"created_at"`
}

func (r registrationRow) model() models.Registration {
	return models.Registration{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Pizza:     r.Pizza,
		Drink:     r.Drink,
		CreatedAt: time.Time(r.CreatedAt),
	}
}

// NewRegistrationStore は db を使う RegistrationStore を作成します
func NewRegistrationStore(db *Database) *RegistrationStore {
	return &RegistrationStore{db: db, now: time.Now}
}

// Insert は登録を保存し、ID と登録日時を割り当てます
func (s *RegistrationStore) Insert(ctx context.Context, in models.NewRegistration) (models.Registration, error) {
	// postgres はマイクロ秒まで保持するので、返す値と保存値を揃える
	createdAt := s.now().UTC().Truncate(time.Microsecond)

	query := s.db.DB.Rebind(`
	INSERT INTO registrations (first_name, last_name, email, pizza, drink, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	RETURNING id`)

	var id int64
	err := s.db.DB.QueryRowxContext(ctx, query,
		in.FirstName, in.LastName, in.Email, in.Pizza, in.Drink, createdAt,
	).Scan(&id)
	if err != nil {
		return models.Registration{}, fmt.Errorf("%w: insert registration: %w", ErrStorage, err)
	}

	return models.Registration{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Pizza:     in.Pizza,
		Drink:     in.Drink,
		CreatedAt: createdAt,
	}, nil
}

// ListAll は全ての登録を登録順に取得します
func (s *RegistrationStore) ListAll(ctx context.Context) ([]models.Registration, error) {
	var rows []registrationRow
	err := s.db.DB.SelectContext(ctx, &rows, `
	SELECT id, first_name, last_name, email, pizza, drink, created_at
	FROM registrations
	ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: query registrations: %w", ErrStorage, err)
	}

	regs := make([]models.Registration, 0, len(rows))
	for _, r := range rows {
		regs = append(regs, r.model())
	}
	return regs, nil
}

// DeleteByID は指定された ID の登録を削除します。存在しない ID はエラーになりません
func (s *RegistrationStore) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.db.DB.ExecContext(ctx, s.db.DB.Rebind("DELETE FROM registrations WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("%w: delete registration %d: %w", ErrStorage, id, err)
	}
	return nil
}
