package persistence

import (
	"context"
	"database/sql"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
)

const profileColumns = `id, email, full_name, password, role, created_at, updated_at`

// ProfileRepository implements account persistence using PostgreSQL.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	q := `INSERT INTO profiles (` + profileColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Email, p.FullName, p.Password, string(p.Role), p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	return scanProfile(row)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
	return scanProfile(row)
}

func (r *ProfileRepository) SetRole(ctx context.Context, id string, role model.UserRole) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role=$1, updated_at=NOW() WHERE id=$2`, string(role), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n)
	return n, err
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	p := &model.Profile{}
	var role string
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Password, &role, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Role = model.UserRole(role)
	return p, nil
}
