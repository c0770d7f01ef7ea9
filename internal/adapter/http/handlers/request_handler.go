package handlers

import (
	"errors"
	"net/http"

	request "khadamat_hub/internal/adapter/http/dto/request"
	response "khadamat_hub/internal/adapter/http/dto/response"
	"khadamat_hub/internal/adapter/http/middleware"
	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase"
	"khadamat_hub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
	errRequestNotOwned       = pkg.NewDomainErrorSimple("FORBIDDEN", "Request belongs to another requester", http.StatusForbidden)
)

// RequestHandler handles service request submission and reads.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// SubmitRequest godoc
// @Summary Submit a service request with optional attachments
// @Tags requests
// @Accept mpfd
// @Produce json
// @Success 201 {object} response.SubmitRequestResponse
// @Security Bearer
// @Router /requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var form request.SubmitRequestForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	if err := request.Validate(form); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	files, err := readUploads(c)
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), actor, usecase.SubmitRequestInput{
		Title:       form.Title,
		Description: form.Description,
		ServiceIDs:  form.ServiceIDs,
		Currency:    form.Currency,
		Files:       files,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SubmitRequestResponse{
		Request: response.FromRequest(result.Request),
		Uploads: response.FromUploadBatch(result.Uploads),
	})
}

// GetRequest godoc
// @Summary Fetch one request
// @Tags requests
// @Produce json
// @Success 200 {object} response.RequestResponse
// @Security Bearer
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if actor.Role == entities.RoleRequester && req.RequesterID != actor.ID {
		c.JSON(errRequestNotOwned.HTTPStatus, errRequestNotOwned.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(req))
}

// ListMyRequests godoc
// @Summary List the authenticated requester's requests
// @Tags requests
// @Produce json
// @Success 200 {array} response.RequestResponse
// @Security Bearer
// @Router /requests [get]
func (h *RequestHandler) ListMyRequests(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	requests, err := h.usecase.ListByRequester(c.Request.Context(), actor.ID)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(requests))
}

// UploadRequestAttachments godoc
// @Summary Append follow-on files to a request's attachment group
// @Tags requests
// @Accept mpfd
// @Produce json
// @Success 201 {object} response.UploadBatchResponse
// @Security Bearer
// @Router /requests/{id}/attachments [post]
func (h *RequestHandler) UploadRequestAttachments(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var form request.UploadAttachmentsForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	if err := request.Validate(form); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	files, err := readUploads(c)
	if err != nil || len(files) == 0 {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.AddAttachments(c.Request.Context(), actor, c.Param("id"), entities.Phase(form.Phase), files)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUploadBatch(result))
}

// ListRequestAttachments godoc
// @Summary List the attachments of a request
// @Tags requests
// @Produce json
// @Success 200 {array} response.AttachmentResponse
// @Security Bearer
// @Router /requests/{id}/attachments [get]
func (h *RequestHandler) ListRequestAttachments(c *gin.Context) {
	attachments, err := h.usecase.ListAttachments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttachments(attachments))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only requesters can submit requests", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMissingTitle):
		return pkg.NewDomainErrorSimple("MISSING_TITLE", "Request title is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptySelection),
		errors.Is(err, usecase.ErrInvalidSelection),
		errors.Is(err, usecase.ErrUnknownOffering):
		return mapSelectionError(err)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGroupNotFound):
		return pkg.NewDomainErrorSimple("GROUP_NOT_FOUND", "Request has no attachment group", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
