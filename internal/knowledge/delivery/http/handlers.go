package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meeting-concierge/internal/knowledge"
	"meeting-concierge/pkg/response"
)

// UploadDocuments godoc
// @Summary     Upload documents and train the knowledge base
// @Description Uploads one or more PDFs describing company policies, goals or history. Their content is embedded into the vector store so company questions can be answered.
// @Tags        Knowledge
// @Accept      multipart/form-data
// @Produce     json
// @Param       files formData file true "PDF files to ingest"
// @Success     200 {object} trainingResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /upload-documents [POST]
func (h *handler) UploadDocuments(c *gin.Context) {
	ctx := c.Request.Context()

	files, err := h.processUploadRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "processUploadRequest: %v", err)
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.Train(ctx, files)
	if err != nil {
		h.l.Errorf(ctx, "uc.Train: %v", err)
		if errors.Is(err, knowledge.ErrNoFiles) || errors.Is(err, knowledge.ErrNoContent) {
			response.BadRequest(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	h.l.Infof(ctx, "UploadDocuments: ingested %d documents as %d chunks", out.Documents, out.Chunks)
	response.OK(c, trainingResp{Status: "Success", Message: trainedMessage})
}
