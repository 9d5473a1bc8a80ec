package http

import (
	"net/http"
	"testing"

	"orghub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganization(t *testing.T) {
	f := newRouterFixture(t)
	f.orgSvc.On("CreateOrganization", mock.Anything, int32(7), mock.MatchedBy(func(o *domain.Organization) bool {
		return o.Slug == "acme" && o.Name == "Acme"
	})).Return(nil)

	rec := f.do(t, "POST", "/api/v1/organizations",
		f.accessTokenFor(t, 7, "founder@example.com"),
		map[string]interface{}{"name": "Acme", "slug": "acme"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	f.orgSvc.AssertExpectations(t)
}

func TestCreateOrganization_InvalidSlug(t *testing.T) {
	f := newRouterFixture(t)

	for _, slug := range []string{"", "A", "Has Spaces", "UPPER", "-leading"} {
		rec := f.do(t, "POST", "/api/v1/organizations",
			f.accessTokenFor(t, 7, "founder@example.com"),
			map[string]interface{}{"name": "Acme", "slug": slug})

		assert.Equal(t, http.StatusBadRequest, rec.Code, "slug %q", slug)
	}
	f.orgSvc.AssertNotCalled(t, "CreateOrganization", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrganization_NotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.orgSvc.On("GetOrganization", mock.Anything, "ghost").
		Return(nil, domain.NotFoundError("organization not found"))

	rec := f.do(t, "GET", "/api/v1/organizations/ghost",
		f.accessTokenFor(t, 7, "founder@example.com"), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMembers_AsAdmin(t *testing.T) {
	f := newRouterFixture(t)
	f.grantAdmin(7)
	f.orgSvc.On("ListMembers", mock.Anything, int32(10)).Return(
		[]domain.User{{ID: 7, Email: "admin@example.com"}, {ID: 8, Email: "member@example.com"}},
		[]domain.Membership{
			{UserID: 7, OrgID: 10, RoleName: domain.RoleNameAdmin},
			{UserID: 8, OrgID: 10, RoleName: domain.RoleNameMember},
		}, nil)

	rec := f.do(t, "GET", "/api/v1/organizations/acme/members",
		f.accessTokenFor(t, 7, "admin@example.com"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "member@example.com")
}

func TestAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	f := newRouterFixture(t)
	refresh, err := f.tokens.GenerateRefreshToken(7, "founder@example.com")
	require.NoError(t, err)

	rec := f.do(t, "GET", "/api/v1/organizations/acme", refresh, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.orgSvc.AssertNotCalled(t, "GetOrganization", mock.Anything, mock.Anything)
}
