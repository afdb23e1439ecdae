package handlers

import (
	"net/http"

	request "resident_service/internal/adapter/http/dto/request"
	response "resident_service/internal/adapter/http/dto/response"
	"resident_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler drives the booking workflow of the session resolved by
// RequireSession. Every command answers with the resulting view.
type WorkflowHandler struct{}

func NewWorkflowHandler() *WorkflowHandler {
	return &WorkflowHandler{}
}

type workflowCommand func(s usecase.IResidentSession) (usecase.WorkflowState, error)

func (h *WorkflowHandler) run(c *gin.Context, cmd workflowCommand) {
	session, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}

	state, err := cmd(session)
	if err != nil {
		writeError(c, mapWorkflowError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflowState(state))
}

// GetState godoc
// @Summary   Current view of the booking workflow
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /workflow [get]
func (h *WorkflowHandler) GetState(c *gin.Context) {
	h.run(c, func(s usecase.IResidentSession) (usecase.WorkflowState, error) {
		return s.State(), nil
	})
}

// SelectArea godoc
// @Summary   Pick the category and fixture of the request
// @Tags      workflow
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.AreaRequest  true  "Area"
// @Success   200   {object}  response.WorkflowResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /workflow/area [put]
func (h *WorkflowHandler) SelectArea(c *gin.Context) {
	var payload request.AreaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.run(c, func(s usecase.IResidentSession) (usecase.WorkflowState, error) {
		return s.SelectArea(payload.Category, payload.FixtureKey)
	})
}

// AddPhotos godoc
// @Summary   Attach photo references
// @Tags      workflow
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.PhotosRequest  true  "Photos"
// @Success   200   {object}  response.WorkflowResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /workflow/photos [post]
func (h *WorkflowHandler) AddPhotos(c *gin.Context) {
	var payload request.PhotosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.run(c, func(s usecase.IResidentSession) (usecase.WorkflowState, error) {
		return s.AddPhotos(payload.Refs)
	})
}

// RemoveLastPhoto godoc
// @Summary   Remove the most recent photo
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/photos/last [delete]
func (h *WorkflowHandler) RemoveLastPhoto(c *gin.Context) {
	h.run(c, usecase.IResidentSession.RemoveLastPhoto)
}

// UpdateConditions godoc
// @Summary   Replace the reported conditions
// @Tags      workflow
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.ConditionsRequest  true  "Conditions"
// @Success   200   {object}  response.WorkflowResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /workflow/conditions [put]
func (h *WorkflowHandler) UpdateConditions(c *gin.Context) {
	var payload request.ConditionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.run(c, func(s usecase.IResidentSession) (usecase.WorkflowState, error) {
		return s.UpdateConditions(payload.Conditions, payload.OtherText)
	})
}

// UpdateSchedule godoc
// @Summary   Change the visit date or slot
// @Tags      workflow
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.ScheduleRequest  true  "Schedule"
// @Success   200   {object}  response.WorkflowResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /workflow/schedule [put]
func (h *WorkflowHandler) UpdateSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.run(c, func(s usecase.IResidentSession) (usecase.WorkflowState, error) {
		return s.UpdateSchedule(payload.Date, payload.Slot)
	})
}

// UpdatePreferences godoc
// @Summary   Change swap and reminder preferences
// @Tags      workflow
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.PreferencesRequest  true  "Preferences"
// @Success   200   {object}  response.WorkflowResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /workflow/preferences [patch]
func (h *WorkflowHandler) UpdatePreferences(c *gin.Context) {
	var payload request.PreferencesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.run(c, func(s usecase.IResidentSession) (usecase.WorkflowState, error) {
		return s.UpdatePreferences(payload.ToUpdate())
	})
}

// Next godoc
// @Summary   Advance to the next intake step
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/next [post]
func (h *WorkflowHandler) Next(c *gin.Context) {
	h.run(c, usecase.IResidentSession.Next)
}

// Back godoc
// @Summary   Return to the previous intake step
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/back [post]
func (h *WorkflowHandler) Back(c *gin.Context) {
	h.run(c, usecase.IResidentSession.Back)
}

// Cancel godoc
// @Summary   Abandon the request in progress
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/cancel [post]
func (h *WorkflowHandler) Cancel(c *gin.Context) {
	h.run(c, usecase.IResidentSession.Cancel)
}

// Finish godoc
// @Summary   Submit the confirmed request as a new order
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/finish [post]
func (h *WorkflowHandler) Finish(c *gin.Context) {
	h.run(c, usecase.IResidentSession.Finish)
}

// ViewOrders godoc
// @Summary   Open the order list
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/orders [post]
func (h *WorkflowHandler) ViewOrders(c *gin.Context) {
	h.run(c, usecase.IResidentSession.ViewOrders)
}

// NewRequest godoc
// @Summary   Start a new request from the order list
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/new [post]
func (h *WorkflowHandler) NewRequest(c *gin.Context) {
	h.run(c, usecase.IResidentSession.NewRequest)
}

// Edit godoc
// @Summary   Reopen a submitted order for editing
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Param     id   path      string  true  "Order ID"
// @Success   200  {object}  response.WorkflowResponse
// @Failure   404  {object}  pkg.HTTPError
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/orders/{id}/edit [post]
func (h *WorkflowHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	h.run(c, func(s usecase.IResidentSession) (usecase.WorkflowState, error) {
		return s.Edit(id)
	})
}

// Save godoc
// @Summary   Save the edited order
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/save [post]
func (h *WorkflowHandler) Save(c *gin.Context) {
	h.run(c, usecase.IResidentSession.Save)
}

// CancelOrder godoc
// @Summary   Delete the order being edited
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.WorkflowResponse
// @Failure   409  {object}  pkg.HTTPError
// @Router    /workflow/cancel-order [post]
func (h *WorkflowHandler) CancelOrder(c *gin.Context) {
	h.run(c, usecase.IResidentSession.CancelOrder)
}

// ListOrders godoc
// @Summary   Submitted orders of the session
// @Tags      workflow
// @Produce   json
// @Security  Bearer
// @Success   200  {array}   response.OrderResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /orders [get]
func (h *WorkflowHandler) ListOrders(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(session.Orders()))
}
