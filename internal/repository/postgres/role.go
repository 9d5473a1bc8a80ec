package postgres

import (
	"context"
	"database/sql"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO roles (org_id, name, description, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, role.OrgID, role.Name, role.Description, time.Now().UTC()).
		Scan(&role.ID, &role.CreatedOn)
	return translateError(err, "role not found", "a role with this name already exists in the organization")
}

func (r *roleRepository) GetByID(ctx context.Context, id int32) (*domain.Role, error) {
	role := &domain.Role{}
	query := `SELECT id, org_id, name, COALESCE(description, ''), created_on FROM roles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&role.ID, &role.OrgID, &role.Name, &role.Description, &role.CreatedOn)
	if err != nil {
		return nil, translateError(err, "role not found", "")
	}
	return role, nil
}

func (r *roleRepository) GetByName(ctx context.Context, orgID int32, name string) (*domain.Role, error) {
	role := &domain.Role{}
	query := `SELECT id, org_id, name, COALESCE(description, ''), created_on FROM roles WHERE org_id = $1 AND name = $2`
	err := r.db.QueryRowContext(ctx, query, orgID, name).
		Scan(&role.ID, &role.OrgID, &role.Name, &role.Description, &role.CreatedOn)
	if err != nil {
		return nil, translateError(err, "role not found", "")
	}
	return role, nil
}

func (r *roleRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.Role, error) {
	query := `SELECT id, org_id, name, COALESCE(description, ''), created_on FROM roles WHERE org_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.OrgID, &role.Name, &role.Description, &role.CreatedOn); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
