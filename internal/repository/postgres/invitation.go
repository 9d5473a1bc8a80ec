package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

const invitationColumns = `id, org_id, role_id, email, invited_by, token, type, status, created_on, expires_on, updated_on`

func scanInvitation(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	err := row.Scan(&inv.ID, &inv.OrgID, &inv.RoleID, &inv.Email, &inv.InvitedBy, &inv.Token,
		&inv.Type, &inv.Status, &inv.CreatedOn, &inv.ExpiresOn, &inv.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `INSERT INTO invitations (org_id, role_id, email, invited_by, token, type, status, created_on, expires_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $8) RETURNING id, created_on, updated_on`
	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, inv.OrgID, inv.RoleID, inv.Email, inv.InvitedBy,
		inv.Token, inv.Type, inv.Status, now, inv.ExpiresOn).
		Scan(&inv.ID, &inv.CreatedOn, &inv.UpdatedOn)
	return translateError(err, "invitation not found", "a pending invitation already exists for this email")
}

func (r *invitationRepository) GetByID(ctx context.Context, id int32) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "invitation not found", "")
	}
	return inv, nil
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`
	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, token))
	if err != nil {
		return nil, translateError(err, "invitation not found", "")
	}
	return inv, nil
}

func (r *invitationRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE org_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invs = append(invs, *inv)
	}
	return invs, rows.Err()
}

func (r *invitationRepository) FindPending(ctx context.Context, email string, orgID int32) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations
	          WHERE org_id = $1 AND LOWER(email) = LOWER($2) AND status = $3`
	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, orgID, email, domain.InvitationStatusPending))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, id int32, status domain.InvitationStatus) (*domain.Invitation, error) {
	query := `UPDATE invitations SET status = $1, updated_on = $2 WHERE id = $3 RETURNING ` + invitationColumns
	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		return nil, translateError(err, "invitation not found", "")
	}
	return inv, nil
}

func (r *invitationRepository) Accept(ctx context.Context, id int32, m *domain.Membership) (*domain.Invitation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	m.JoinedOn = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `INSERT INTO memberships (user_id, org_id, role_id, joined_on) VALUES ($1, $2, $3, $4)`,
		m.UserID, m.OrgID, m.RoleID, m.JoinedOn)
	if err != nil {
		return nil, translateError(err, "membership not found", "user is already a member of this organization")
	}

	query := `UPDATE invitations SET status = $1, updated_on = $2 WHERE id = $3 RETURNING ` + invitationColumns
	inv, err := scanInvitation(tx.QueryRowContext(ctx, query, domain.InvitationStatusAccepted, time.Now().UTC(), id))
	if err != nil {
		return nil, translateError(err, "invitation not found", "")
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) RegenerateToken(ctx context.Context, id int32, token string, expiresOn time.Time) (*domain.Invitation, error) {
	query := `UPDATE invitations SET token = $1, expires_on = $2, status = $3, updated_on = $4 WHERE id = $5 RETURNING ` + invitationColumns
	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, token, expiresOn, domain.InvitationStatusPending, time.Now().UTC(), id))
	if err != nil {
		return nil, translateError(err, "invitation not found", "invitation token collision")
	}
	return inv, nil
}

func (r *invitationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError("invitation not found")
	}
	return nil
}

func (r *invitationRepository) ExpireOverdue(ctx context.Context) (int64, error) {
	query := `UPDATE invitations SET status = $1, updated_on = $2 WHERE status = $3 AND expires_on < $2`
	res, err := r.db.ExecContext(ctx, query, domain.InvitationStatusExpired, time.Now().UTC(), domain.InvitationStatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invitationRepository) PurgeResolvedBefore(ctx context.Context, cutoffDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -cutoffDays)
	query := `DELETE FROM invitations WHERE status <> $1 AND updated_on < $2`
	res, err := r.db.ExecContext(ctx, query, domain.InvitationStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
