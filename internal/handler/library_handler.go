package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/service"
	"wqtc-api/internal/validator"
	"wqtc-api/internal/verse"
)

// DefaultMaxUpload caps bulk uploads when no limit is configured.
const DefaultMaxUpload = 10 << 20

// LibraryHandler serves the video library and its bulk import.
type LibraryHandler struct {
	library   service.LibraryServiceInterface
	imports   service.ImportServiceInterface
	exports   service.ExportServiceInterface
	maxUpload int64
}

// NewLibraryHandler creates a new LibraryHandler. maxUpload caps the bulk
// preview upload in bytes.
func NewLibraryHandler(
	library service.LibraryServiceInterface,
	imports service.ImportServiceInterface,
	exports service.ExportServiceInterface,
	maxUpload int64,
) *LibraryHandler {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	return &LibraryHandler{library: library, imports: imports, exports: exports, maxUpload: maxUpload}
}

// SearchRequest is the body of POST /library. Every field is optional.
type SearchRequest struct {
	Surah  FlexString `json:"surah"`
	Versus FlexString `json:"versus"`
	Search string     `json:"search"`
	Sort   string     `json:"sort"`
	Limit  FlexString `json:"limit"`
}

// Filter converts the request into a VideoFilter. A malformed verse
// selector is dropped; a malformed surah or limit is an error.
func (r SearchRequest) Filter() (domain.VideoFilter, error) {
	filter := domain.VideoFilter{
		Search: strings.TrimSpace(r.Search),
		Sort:   domain.ParseSortDirection(r.Sort),
	}

	if raw := strings.TrimSpace(string(r.Surah)); raw != "" && raw != "0" {
		n, ok := validator.ParseInt(raw)
		if !ok {
			return filter, fmt.Errorf("%w: surah must be a number", domain.ErrInvalidInput)
		}
		filter.SurahNo = &n
	}

	if spec, ok := verse.Parse(string(r.Versus)); ok {
		filter.Verse = &spec
	}

	if raw := strings.TrimSpace(string(r.Limit)); raw != "" {
		n, ok := validator.ParseInt(raw)
		if !ok || n < 0 {
			return filter, fmt.Errorf("%w: limit must be a non-negative number", domain.ErrInvalidInput)
		}
		filter.Limit = n
	}

	return filter, nil
}

// Search handles POST /api/v1/library
func (h *LibraryHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, "invalid search body: "+err.Error())
		return
	}

	filter, err := req.Filter()
	if err != nil {
		respondError(c, err)
		return
	}

	videos, err := h.library.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MsgSuccess, videos)
}

// Create handles POST /api/v1/library/create
func (h *LibraryHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var in domain.VideoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid video body: "+err.Error())
		return
	}

	video, err := h.library.Create(c.Request.Context(), s, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MsgSuccess, video)
}

// Update handles PUT /api/v1/library/:id
func (h *LibraryHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var in domain.VideoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "invalid video body: "+err.Error())
		return
	}

	video, err := h.library.Update(c.Request.Context(), s, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MsgSuccess, video)
}

// Delete handles DELETE /api/v1/library/:id
func (h *LibraryHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.library.Delete(c.Request.Context(), s, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MsgSuccess, nil)
}

// BulkPreview handles POST /api/v1/library/bulk-preview
func (h *LibraryHandler) BulkPreview(c *gin.Context) {
	file, header, ok := formFile(c, h.maxUpload)
	if !ok {
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondBadRequest(c, "failed to read upload")
		return
	}

	result, err := h.imports.Preview(c.Request.Context(), header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MsgSuccess, result)
}

// BulkCreate handles POST /api/v1/library/bulk-create
func (h *LibraryHandler) BulkCreate(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var records []domain.ValidatedVideo
	if err := c.ShouldBindJSON(&records); err != nil {
		respondBadRequest(c, "body must be an array of validated videos: "+err.Error())
		return
	}

	inserted, err := h.imports.Commit(c.Request.Context(), s, records)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, fmt.Sprintf("Successfully added %d videos", inserted), gin.H{"inserted": inserted})
}

// BulkTemplate handles GET /api/v1/library/bulk-template?format=csv|xlsx
func (h *LibraryHandler) BulkTemplate(c *gin.Context) {
	file, err := h.exports.Template(strings.ToLower(c.DefaultQuery("format", "csv")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// Export handles GET /api/v1/library/export
func (h *LibraryHandler) Export(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", `attachment; filename="videos.csv"`)
	c.Status(http.StatusOK)

	count, err := h.exports.StreamVideos(c.Request.Context(), &ginStreamWriter{writer: c.Writer})
	log := logger.FromContext(c.Request.Context())
	if err != nil {
		// Headers are already sent; the truncated body is all the client gets.
		log.Error("Streaming export error",
			slog.Int("written", count),
			slog.String("error", err.Error()))
		return
	}
	log.Info("Streaming export completed", slog.Int("records", count))
}
