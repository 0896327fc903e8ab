package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"meeting-concierge/internal/knowledge"
	"meeting-concierge/internal/registry"
	"meeting-concierge/internal/scheduler"
	"meeting-concierge/pkg/response"
)

// ProcessUserQuery godoc
// @Summary     Process a conversational query
// @Description Classifies the utterance and answers it: scheduling queries from the conversation history, company questions from the document knowledge base, everything else by a generic completion.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body processQueryReq true "User query, meeting duration and conversation history"
// @Success     200 {object} processQueryResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /process-user-query [POST]
func (h *handler) ProcessUserQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryRequest(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.ProcessQuery(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuery: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, processQueryResp{Response: out.Response})
}

// ScheduleMeeting godoc
// @Summary     Execute a scheduling instruction
// @Description Runs a natural-language instruction through the scheduling agent, which checks availability and books or suggests alternatives using its tools.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body scheduleMeetingReq true "Natural-language scheduling instruction"
// @Success     200 {object} processQueryResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /schedule-meeting [POST]
func (h *handler) ScheduleMeeting(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleRequest(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	answer, err := h.agent.Run(ctx, req.Instruction)
	if err != nil {
		h.l.Errorf(ctx, "agent.Run: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, processQueryResp{Response: answer})
}

// mapError translates domain errors to status codes. Anything unrecognized
// is an upstream failure reported as 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, knowledge.ErrNotTrained), errors.Is(err, scheduler.ErrEmptyQuery), errors.Is(err, scheduler.ErrNoParticipants):
		response.BadRequest(c, err)
	case errors.Is(err, registry.ErrGroupNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, fmt.Errorf("An error occurred while processing the request: %v", err))
	}
}
