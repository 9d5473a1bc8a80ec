package postgres

import (
	"context"
	"database/sql"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `INSERT INTO orgs (name, slug, domain, description, created_by, created_on)
	          VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, org.Name, org.Slug, org.Domain, org.Description, org.CreatedBy, time.Now().UTC()).
		Scan(&org.ID, &org.CreatedOn)
	return translateError(err, "organization not found", "an organization with this slug or domain already exists")
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	org := &domain.Organization{}
	query := `SELECT o.id, o.name, o.slug, COALESCE(o.domain, ''), COALESCE(o.description, ''), o.created_by, o.created_on,
	                 (SELECT count(*) FROM memberships m WHERE m.org_id = o.id)
	          FROM orgs o WHERE o.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&org.ID, &org.Name, &org.Slug, &org.Domain, &org.Description, &org.CreatedBy, &org.CreatedOn, &org.MemberCount)
	if err != nil {
		return nil, translateError(err, "organization not found", "")
	}
	return org, nil
}

func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	org := &domain.Organization{}
	query := `SELECT o.id, o.name, o.slug, COALESCE(o.domain, ''), COALESCE(o.description, ''), o.created_by, o.created_on,
	                 (SELECT count(*) FROM memberships m WHERE m.org_id = o.id)
	          FROM orgs o WHERE o.slug = $1`
	err := r.db.QueryRowContext(ctx, query, slug).
		Scan(&org.ID, &org.Name, &org.Slug, &org.Domain, &org.Description, &org.CreatedBy, &org.CreatedOn, &org.MemberCount)
	if err != nil {
		return nil, translateError(err, "organization not found", "")
	}
	return org, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, slug, COALESCE(domain, ''), COALESCE(description, ''), created_by, created_on FROM orgs ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Slug, &org.Domain, &org.Description, &org.CreatedBy, &org.CreatedOn); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	query := `UPDATE orgs SET name = $1, domain = NULLIF($2, ''), description = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, org.Name, org.Domain, org.Description, org.ID)
	return translateError(err, "organization not found", "an organization with this domain already exists")
}
