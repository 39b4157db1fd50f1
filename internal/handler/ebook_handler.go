package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/service"
)

// EBookHandler serves e-books. Unlike the other resources its responses are
// bare objects, which the reader UI depends on.
type EBookHandler struct {
	ebooks    service.EBookServiceInterface
	maxUpload int64
}

// NewEBookHandler creates a new EBookHandler.
func NewEBookHandler(ebooks service.EBookServiceInterface, maxUpload int64) *EBookHandler {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	return &EBookHandler{ebooks: ebooks, maxUpload: maxUpload}
}

// UploadResponse names a stored upload.
type UploadResponse struct {
	Filename string `json:"filename"`
}

// List handles GET /api/v1/ebooks?sort=&limit=
func (h *EBookHandler) List(c *gin.Context) {
	filter := domain.EBookFilter{Sort: domain.ParseSortDirection(c.DefaultQuery("sort", "DESC"))}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondBadRequest(c, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	books, err := h.ebooks.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// Create handles POST /api/v1/ebooks
func (h *EBookHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var in domain.EBookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid ebook body: "+err.Error())
		return
	}

	book, err := h.ebooks.Create(c.Request.Context(), s, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update handles PUT /api/v1/ebooks/:id
func (h *EBookHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var patch domain.EBookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid ebook body: "+err.Error())
		return
	}

	book, err := h.ebooks.Update(c.Request.Context(), s, id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /api/v1/ebooks/:id
func (h *EBookHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.ebooks.Delete(c.Request.Context(), s, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "EBook deleted successfully"})
}

// UploadPDF handles POST /api/v1/ebooks/upload-pdf
func (h *EBookHandler) UploadPDF(c *gin.Context) {
	h.upload(c, h.ebooks.UploadPDF)
}

// UploadCover handles POST /api/v1/ebooks/upload-cover
func (h *EBookHandler) UploadCover(c *gin.Context) {
	h.upload(c, h.ebooks.UploadCover)
}

type storeFunc func(ctx context.Context, session domain.Session, filename, contentType string, r io.Reader) (string, error)

func (h *EBookHandler) upload(c *gin.Context, store storeFunc) {
	s, ok := session(c)
	if !ok {
		return
	}
	file, header, ok := formFile(c, h.maxUpload)
	if !ok {
		return
	}
	defer file.Close()

	name, err := store(c.Request.Context(), s, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{Filename: name})
}
