package http

import (
	"net/http"
	"strconv"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/service"

	"github.com/gorilla/mux"
)

type InvitationHandler struct {
	inviteSvc service.InvitationService
	orgSvc    service.OrganizationService
}

func NewInvitationHandler(inviteSvc service.InvitationService, orgSvc service.OrganizationService) *InvitationHandler {
	return &InvitationHandler{inviteSvc: inviteSvc, orgSvc: orgSvc}
}

// GetByToken handles GET /invitations/{token}. Public: the token is the
// capability.
func (h *InvitationHandler) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	inv, err := h.inviteSvc.Validate(r.Context(), token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"invitation": inv})
}

// Accept handles POST /invitations/{token}.
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	org, err := h.inviteSvc.Accept(r.Context(), mux.Vars(r)["token"], claims.UserID, claims.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"organization": org})
}

// Decline handles DELETE /invitations/{token}.
func (h *InvitationHandler) Decline(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.inviteSvc.Decline(r.Context(), mux.Vars(r)["token"], claims.Email); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "invitation declined"})
}

// List handles GET /organizations/{slug}/invitations (admin only).
func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	org, err := h.authorizeAdmin(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	invs, err := h.inviteSvc.ListByOrg(r.Context(), org.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"invitations": invs})
}

type createInvitationRequest struct {
	Email  string `json:"email"`
	RoleID int32  `json:"role_id"`
}

// Create handles POST /organizations/{slug}/invitations (admin only).
func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	org, err := h.authorizeAdmin(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req createInvitationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Email == "" {
		writeError(w, r, domain.InvalidError("email is required"))
		return
	}
	if req.RoleID == 0 {
		writeError(w, r, domain.InvalidError("role_id is required"))
		return
	}

	inv, err := h.inviteSvc.Create(r.Context(), org.ID, req.RoleID, req.Email, claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"invitation": inv})
}

// Resend handles PUT /organizations/{slug}/invitations/{id} (admin only).
func (h *InvitationHandler) Resend(w http.ResponseWriter, r *http.Request) {
	org, err := h.authorizeAdmin(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	inv, err := h.inviteSvc.Resend(r.Context(), id, org.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"invitation": inv})
}

// Cancel handles DELETE /organizations/{slug}/invitations/{id} (admin only).
// The row is removed entirely, not transitioned.
func (h *InvitationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	org, err := h.authorizeAdmin(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.inviteSvc.Cancel(r.Context(), id, org.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "invitation cancelled"})
}

type requestAccessRequest struct {
	Email string `json:"email"`
}

// RequestAccess handles POST /organizations/{slug}/requests. Public
// self-service flow; the response never includes the token, which is only
// delivered by email once an admin approves via resend.
func (h *InvitationHandler) RequestAccess(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgSvc.GetOrganization(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req requestAccessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Email == "" {
		writeError(w, r, domain.InvalidError("email is required"))
		return
	}

	inv, err := h.inviteSvc.RequestAccess(r.Context(), org.ID, req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"request": map[string]interface{}{
			"id":     inv.ID,
			"org_id": inv.OrgID,
			"email":  inv.Email,
			"type":   inv.Type,
			"status": inv.Status,
		},
	})
}

func (h *InvitationHandler) authorizeAdmin(r *http.Request) (*domain.Organization, error) {
	claims, err := ClaimsFromContext(r.Context())
	if err != nil {
		return nil, err
	}
	return resolveOrgAdmin(r, h.orgSvc, mux.Vars(r)["slug"], claims.UserID)
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.InvalidError("invalid id")
	}
	return int32(id), nil
}
