package http

import (
	"orghub-backend/internal/security"
	"orghub-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes under /api/v1.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	userSvc service.UserService,
	orgSvc service.OrganizationService,
	inviteSvc service.InvitationService,
	noteSvc service.NotificationService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	userHandler := NewUserHandler(userSvc)
	orgHandler := NewOrgHandler(orgSvc)
	inviteHandler := NewInvitationHandler(inviteSvc, orgSvc)
	noteHandler := NewNotificationHandler(noteSvc)

	authMw := NewAuthMiddleware(tokens)

	r := mux.NewRouter()
	r.Use(RequestID, RequestLogger)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Session exchange with the identity provider
	api.HandleFunc("/auth/session", authHandler.Session).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	// Profile
	api.HandleFunc("/me", authMw.Require(userHandler.Me)).Methods("GET")
	api.HandleFunc("/me", authMw.Require(userHandler.UpdateMe)).Methods("PUT")

	// Invitation lifecycle, token-addressed
	api.HandleFunc("/invitations/{token}", inviteHandler.GetByToken).Methods("GET")
	api.HandleFunc("/invitations/{token}", authMw.Require(inviteHandler.Accept)).Methods("POST")
	api.HandleFunc("/invitations/{token}", authMw.Require(inviteHandler.Decline)).Methods("DELETE")

	// Organizations
	api.HandleFunc("/organizations", authMw.Require(orgHandler.Create)).Methods("POST")
	api.HandleFunc("/organizations/{slug}", authMw.Require(orgHandler.Get)).Methods("GET")
	api.HandleFunc("/organizations/{slug}/members", authMw.Require(orgHandler.ListMembers)).Methods("GET")
	api.HandleFunc("/organizations/{slug}/requests", inviteHandler.RequestAccess).Methods("POST")

	// Invitation administration
	api.HandleFunc("/organizations/{slug}/invitations", authMw.Require(inviteHandler.List)).Methods("GET")
	api.HandleFunc("/organizations/{slug}/invitations", authMw.Require(inviteHandler.Create)).Methods("POST")
	api.HandleFunc("/organizations/{slug}/invitations/{id}", authMw.Require(inviteHandler.Resend)).Methods("PUT")
	api.HandleFunc("/organizations/{slug}/invitations/{id}", authMw.Require(inviteHandler.Cancel)).Methods("DELETE")

	// Notifications
	api.HandleFunc("/notifications", authMw.Require(noteHandler.List)).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", authMw.Require(noteHandler.MarkRead)).Methods("POST")

	return r
}
