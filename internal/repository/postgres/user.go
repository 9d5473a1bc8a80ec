package postgres

import (
	"context"
	"database/sql"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (firebase_uid, email, name, avatar_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $5) RETURNING id, created_on, updated_on`
	err := r.db.QueryRowContext(ctx, query, u.FirebaseUID, u.Email, u.Name, u.AvatarURL, time.Now().UTC()).
		Scan(&u.ID, &u.CreatedOn, &u.UpdatedOn)
	return translateError(err, "user not found", "a user with this email already exists")
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, firebase_uid, email, name, COALESCE(avatar_url, ''), created_on, updated_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.FirebaseUID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "user not found", "")
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, firebase_uid, email, name, COALESCE(avatar_url, ''), created_on, updated_on FROM users WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.FirebaseUID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "user not found", "")
	}
	return u, nil
}

func (r *userRepository) GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, firebase_uid, email, name, COALESCE(avatar_url, ''), created_on, updated_on FROM users WHERE firebase_uid = $1`
	err := r.db.QueryRowContext(ctx, query, uid).
		Scan(&u.ID, &u.FirebaseUID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "user not found", "")
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email = $1, name = $2, avatar_url = $3, updated_on = $4 WHERE id = $5`
	u.UpdatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.AvatarURL, u.UpdatedOn, u.ID)
	return translateError(err, "user not found", "a user with this email already exists")
}
