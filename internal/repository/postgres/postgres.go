package postgres

import (
	"database/sql"
	"errors"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrganizationRepository
	repository.RoleRepository
	repository.MembershipRepository
	repository.InvitationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		OrganizationRepository: NewOrganizationRepository(db),
		RoleRepository:         NewRoleRepository(db),
		MembershipRepository:   NewMembershipRepository(db),
		InvitationRepository:   NewInvitationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// uniqueViolation is the Postgres error code raised when an insert or update
// breaks a unique constraint.
const uniqueViolation = "23505"

// translateError maps driver-level failures onto the domain error taxonomy so
// callers never see sql.ErrNoRows or pq error codes.
func translateError(err error, notFound, conflict string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError(notFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ConflictError(conflict)
	}
	return err
}
