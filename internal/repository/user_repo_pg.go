package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.PassengerProfile) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.PassengerProfile, error)
	UpdateProfile(ctx context.Context, profile *domain.PassengerProfile) error
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

// CreateWithProfile inserts the user and the passenger profile together, so a
// half-registered account can never be observed.
func (r *PGUserRepository) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.PassengerProfile) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `INSERT INTO users (username, password_hash, first_name, last_name, email)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Email).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return err
	}

	profile.UserID = user.ID
	if err := tx.QueryRow(ctx, `INSERT INTO passenger_profiles (user_id, phone_number, address, gender)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		profile.UserID, profile.PhoneNumber, profile.Address, profile.Gender).
		Scan(&profile.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `SELECT id, username, password_hash, first_name, last_name, email, created_at FROM users WHERE id=$1`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGUserRepository) GetProfile(ctx context.Context, userID int64) (*domain.PassengerProfile, error) {
	var p domain.PassengerProfile
	err := r.db.QueryRow(ctx, `SELECT id, user_id, phone_number, address, gender FROM passenger_profiles WHERE user_id=$1`, userID).
		Scan(&p.ID, &p.UserID, &p.PhoneNumber, &p.Address, &p.Gender)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGUserRepository) UpdateProfile(ctx context.Context, profile *domain.PassengerProfile) error {
	res, err := r.db.Exec(ctx, `UPDATE passenger_profiles SET phone_number=$1, address=$2, gender=$3 WHERE user_id=$4`,
		profile.PhoneNumber, profile.Address, profile.Gender, profile.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

var _ UserRepository = (*PGUserRepository)(nil)
