package http

import (
	"net/http"
	"regexp"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/service"

	"github.com/gorilla/mux"
)

type OrgHandler struct {
	orgSvc service.OrganizationService
}

func NewOrgHandler(orgSvc service.OrganizationService) *OrgHandler {
	return &OrgHandler{orgSvc: orgSvc}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

type createOrgRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
}

// Create handles POST /organizations.
func (h *OrgHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req createOrgRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Name == "" {
		writeError(w, r, domain.InvalidError("name is required"))
		return
	}
	if !slugPattern.MatchString(req.Slug) {
		writeError(w, r, domain.InvalidError("slug must be lowercase letters, digits and dashes"))
		return
	}

	org := &domain.Organization{
		Name:        req.Name,
		Slug:        req.Slug,
		Domain:      req.Domain,
		Description: req.Description,
	}
	if err := h.orgSvc.CreateOrganization(r.Context(), claims.UserID, org); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"organization": org})
}

// Get handles GET /organizations/{slug}.
func (h *OrgHandler) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgSvc.GetOrganization(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"organization": org})
}

type memberResponse struct {
	User       domain.User       `json:"user"`
	Membership domain.Membership `json:"membership"`
}

// ListMembers handles GET /organizations/{slug}/members (admin only).
func (h *OrgHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	org, err := resolveOrgAdmin(r, h.orgSvc, mux.Vars(r)["slug"], claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, memberships, err := h.orgSvc.ListMembers(r.Context(), org.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	members := make([]memberResponse, 0, len(users))
	for i := range users {
		members = append(members, memberResponse{User: users[i], Membership: memberships[i]})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

// resolveOrgAdmin loads the organization by slug and verifies the acting user
// holds the admin role in it. A non-member gets Forbidden, not NotFound, so
// the org's existence is already public via its slug.
func resolveOrgAdmin(r *http.Request, orgSvc service.OrganizationService, slug string, userID int32) (*domain.Organization, error) {
	org, err := orgSvc.GetOrganization(r.Context(), slug)
	if err != nil {
		return nil, err
	}

	m, err := orgSvc.GetMembership(r.Context(), userID, org.ID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.ForbiddenError("not a member of this organization")
		}
		return nil, err
	}
	if !m.IsAdmin() {
		return nil, domain.ForbiddenError("admin role required")
	}
	return org, nil
}
