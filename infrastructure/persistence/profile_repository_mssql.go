package persistence

import (
	"context"
	"database/sql"

	domainerrors "swishview/domain/errors"
	"swishview/domain/model"
	"swishview/domain/repository"
	"swishview/infrastructure/logger"
)

// ProfileRepositoryMSSQL is the SQL Server implementation of IProfile.
type ProfileRepositoryMSSQL struct{ db *sql.DB }

func NewProfileRepositoryMSSQL(db *sql.DB) repository.IProfile {
	return &ProfileRepositoryMSSQL{db}
}

func (r *ProfileRepositoryMSSQL) Create(ctx context.Context, p *model.Profile) error {
	q := `INSERT INTO dbo.[profiles] (id, email, full_name, password, role, created_at, updated_at)
	      VALUES (@p1,@p2,@p3,@p4,@p5,@p6,@p7)`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Email, p.FullName, p.Password, string(p.Role), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"email": p.Email,
		}).Error("mssql: create profile failed")
	}
	return err
}

func (r *ProfileRepositoryMSSQL) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM dbo.[profiles] WHERE id = @p1`, id)
	return scanProfile(row)
}

func (r *ProfileRepositoryMSSQL) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM dbo.[profiles] WHERE email = @p1`, email)
	return scanProfile(row)
}

func (r *ProfileRepositoryMSSQL) SetRole(ctx context.Context, id string, role model.UserRole) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dbo.[profiles] SET role=@p1, updated_at=SYSDATETIME() WHERE id=@p2`,
		string(role), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepositoryMSSQL) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dbo.[profiles]`).Scan(&n)
	return n, err
}
