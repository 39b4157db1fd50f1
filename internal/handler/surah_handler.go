package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/service"
)

// SurahHandler serves the chapter reference table.
type SurahHandler struct {
	surahs service.SurahServiceInterface
}

// NewSurahHandler creates a new SurahHandler.
func NewSurahHandler(surahs service.SurahServiceInterface) *SurahHandler {
	return &SurahHandler{surahs: surahs}
}

// List handles GET /api/v1/surah
func (h *SurahHandler) List(c *gin.Context) {
	surahs, err := h.surahs.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MsgSuccess, surahs)
}

// Create handles POST /api/v1/surah
func (h *SurahHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var surah domain.Surah
	if err := c.ShouldBindJSON(&surah); err != nil {
		respondBadRequest(c, "invalid surah body: "+err.Error())
		return
	}

	created, err := h.surahs.Create(c.Request.Context(), s, surah)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Surah added successfully", created)
}

// Delete handles DELETE /api/v1/surah/:id
func (h *SurahHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondBadRequest(c, "id must be a positive integer")
		return
	}

	if err := h.surahs.Delete(c.Request.Context(), s, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Surah deleted", nil)
}
