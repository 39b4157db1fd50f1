package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/service"
)

// TotalCountHeader carries the unpaged match count of a list response.
const TotalCountHeader = "X-Total-Count"

// RegistrationHandler serves class sign-ups.
type RegistrationHandler struct {
	registrations service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(registrations service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// Register handles POST /api/v1/class-registration
func (h *RegistrationHandler) Register(c *gin.Context) {
	var in domain.RegistrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid registration body: "+err.Error())
		return
	}

	view, err := h.registrations.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Registration successful! We will contact you on WhatsApp soon.", view)
}

// RegistrationQuery is the admin listing filter. "all" disables a filter.
type RegistrationQuery struct {
	Status   string `form:"status"`
	Language string `form:"language"`
	Page     int    `form:"page"`
	PerPage  int    `form:"perPage"`
}

// List handles GET /api/v1/class-registration
func (h *RegistrationHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var q RegistrationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, "invalid query: "+err.Error())
		return
	}

	views, total, err := h.registrations.List(c.Request.Context(), s, domain.RegistrationFilter{
		Status:   q.Status,
		Language: q.Language,
		Page:     q.Page,
		PerPage:  q.PerPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(TotalCountHeader, strconv.Itoa(total))
	respondOK(c, MsgSuccess, views)
}

// UpdateStatus handles PUT /api/v1/class-registration/:id
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var update domain.RegistrationStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid status body: "+err.Error())
		return
	}

	view, err := h.registrations.UpdateStatus(c.Request.Context(), s, id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Status updated", view)
}
