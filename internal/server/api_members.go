package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	memberhttpmapper "github.com/storegate/backoffice/internal/domains/members/adapters/http/mapper"
	membersapp "github.com/storegate/backoffice/internal/domains/members/application"
	membersports "github.com/storegate/backoffice/internal/domains/members/ports"
)

// MemberAPI wires HTTP transport with the member registration service.
type MemberAPI struct {
	service membersports.Service
}

// NewMemberAPI creates a MemberAPI backed by the provided service.
func NewMemberAPI(service membersports.Service) MemberAPI {
	return MemberAPI{service: service}
}

type joinResponse struct {
	ID int64 `json:"id"`
}

type updateMemberNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// Post /members
// Register a member
func (api *MemberAPI) Join(c *gin.Context) {
	var payload memberhttpmapper.Member
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	member, err := memberhttpmapper.ToDomainMember(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	id, err := api.service.Join(c.Request.Context(), member)
	if err != nil {
		respondMemberServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, joinResponse{ID: id})
}

// Get /members
// List registered members
func (api *MemberAPI) ListMembers(c *gin.Context) {
	members, err := api.service.List(c.Request.Context())
	if err != nil {
		respondMemberServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberhttpmapper.FromDomainMembers(members))
}

// Get /members/:memberId
// Find member by ID
func (api *MemberAPI) GetMemberByID(c *gin.Context) {
	id, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}
	member, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondMemberServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberhttpmapper.FromDomainMember(member))
}

// Patch /members/:memberId
// Rename a member
func (api *MemberAPI) UpdateMemberName(c *gin.Context) {
	id, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}
	var payload updateMemberNameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	member, err := api.service.UpdateName(c.Request.Context(), id, payload.Name)
	if err != nil {
		respondMemberServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberhttpmapper.FromDomainMember(member))
}

func respondMemberServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, membersapp.ErrDuplicateName):
		respondError(c, http.StatusConflict, err)
	case errors.Is(err, membersports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, membersapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
