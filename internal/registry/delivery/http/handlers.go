package http

import (
	"github.com/gin-gonic/gin"

	"meeting-concierge/pkg/response"
)

// AddSuperuser godoc
// @Summary     Add a superuser
// @Description Grants elevated scheduling rights to a calendar identity. Adding an existing superuser is a no-op.
// @Tags        Registry
// @Accept      json
// @Produce     json
// @Param       body body superuserReq true "Superuser email"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Router      /add-superuser [POST]
func (h *handler) AddSuperuser(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuperuserReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	added, err := h.store.AddSuperuser(req.Email)
	if err != nil {
		h.l.Errorf(ctx, "store.AddSuperuser: %v", err)
		response.BadRequest(c, err)
		return
	}

	response.Message(c, newSuperuserMessage(req.Email, added))
}

// CreateGroup godoc
// @Summary     Create a group
// @Description Creates a named group of calendar identities used as a single scheduling unit. Re-creating an existing name is a no-op.
// @Tags        Registry
// @Accept      json
// @Produce     json
// @Param       body body groupReq true "Group name and members"
// @Success     200 {object} createGroupResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Router      /create-group [POST]
func (h *handler) CreateGroup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.store.CreateGroup(req.GroupName, req.Members)
	if err != nil {
		h.l.Errorf(ctx, "store.CreateGroup: %v", err)
		response.BadRequest(c, err)
		return
	}

	response.OK(c, h.newCreateGroupResp(req, created))
}

// ListGroups godoc
// @Summary     List groups
// @Description Returns all groups and their members.
// @Tags        Registry
// @Produce     json
// @Success     200 {object} listGroupsResp
// @Router      /list-groups [GET]
func (h *handler) ListGroups(c *gin.Context) {
	response.OK(c, listGroupsResp{Groups: h.store.ListGroups()})
}
