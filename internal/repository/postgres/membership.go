package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Add(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (user_id, org_id, role_id, joined_on) VALUES ($1, $2, $3, $4)`
	m.JoinedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, m.UserID, m.OrgID, m.RoleID, m.JoinedOn)
	return translateError(err, "membership not found", "user is already a member of this organization")
}

func (r *membershipRepository) Get(ctx context.Context, userID, orgID int32) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT m.user_id, m.org_id, m.role_id, r.name, m.joined_on
	          FROM memberships m JOIN roles r ON r.id = m.role_id
	          WHERE m.user_id = $1 AND m.org_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, orgID).
		Scan(&m.UserID, &m.OrgID, &m.RoleID, &m.RoleName, &m.JoinedOn)
	if err != nil {
		return nil, translateError(err, "membership not found", "")
	}
	return m, nil
}

func (r *membershipRepository) GetByEmail(ctx context.Context, email string, orgID int32) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT m.user_id, m.org_id, m.role_id, r.name, m.joined_on
	          FROM memberships m
	          JOIN roles r ON r.id = m.role_id
	          JOIN users u ON u.id = m.user_id
	          WHERE LOWER(u.email) = LOWER($1) AND m.org_id = $2`
	err := r.db.QueryRowContext(ctx, query, email, orgID).
		Scan(&m.UserID, &m.OrgID, &m.RoleID, &m.RoleName, &m.JoinedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *membershipRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Membership, error) {
	query := `SELECT m.user_id, m.org_id, m.role_id, r.name, m.joined_on
	          FROM memberships m JOIN roles r ON r.id = m.role_id
	          WHERE m.user_id = $1 ORDER BY m.joined_on`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.UserID, &m.OrgID, &m.RoleID, &m.RoleName, &m.JoinedOn); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func (r *membershipRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.User, []domain.Membership, error) {
	query := `SELECT u.id, u.email, u.name, COALESCE(u.avatar_url, ''), u.created_on, u.updated_on,
	                 m.user_id, m.org_id, m.role_id, r.name, m.joined_on
	          FROM memberships m
	          JOIN users u ON u.id = m.user_id
	          JOIN roles r ON r.id = m.role_id
	          WHERE m.org_id = $1 ORDER BY m.joined_on`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var users []domain.User
	var memberships []domain.Membership
	for rows.Next() {
		var u domain.User
		var m domain.Membership
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedOn, &u.UpdatedOn,
			&m.UserID, &m.OrgID, &m.RoleID, &m.RoleName, &m.JoinedOn); err != nil {
			return nil, nil, err
		}
		users = append(users, u)
		memberships = append(memberships, m)
	}
	return users, memberships, rows.Err()
}

func (r *membershipRepository) Remove(ctx context.Context, userID, orgID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM memberships WHERE user_id = $1 AND org_id = $2`, userID, orgID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError("membership not found")
	}
	return nil
}
