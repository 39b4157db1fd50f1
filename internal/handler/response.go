package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
	"wqtc-api/internal/middleware"
)

// MsgSuccess is the envelope message for plain successful reads.
const MsgSuccess = "Success"

// Envelope is the JSON wrapper used by the library, surah and registration
// endpoints.
type Envelope struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Result any    `json:"result"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func respondOK(c *gin.Context, msg string, result any) {
	c.JSON(http.StatusOK, Envelope{Code: http.StatusOK, Msg: msg, Result: result})
}

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat),
		errors.Is(err, domain.ErrMalformedInput),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Server-side failures are
// logged and replaced with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()

	log := logger.FromContext(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		msg = "internal server error"
		if errors.Is(err, domain.ErrPersistenceFailure) {
			msg = "failed to save records, nothing was stored"
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Code: status, Msg: msg})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Msg: msg})
}

// session returns the caller's session. Admin routes are already gated, so
// a missing session here is answered with 401.
func session(c *gin.Context) (domain.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
	}
	return s, ok
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respondBadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// formFile reads the multipart "file" field with the body capped at limit
// bytes.
func formFile(c *gin.Context, limit int64) (multipart.File, *multipart.FileHeader, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Code: http.StatusRequestEntityTooLarge,
				Msg:  fmt.Sprintf("file exceeds %d bytes", limit),
			})
			return nil, nil, false
		}
		respondBadRequest(c, "file is required")
		return nil, nil, false
	}
	return file, header, true
}
