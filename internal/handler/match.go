package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"matchproxy/internal/matching"
)

// Matcher computes match results for one request. Satisfied by
// *matching.Client; tests substitute a stub.
type Matcher interface {
	MatchCandidates(ctx context.Context, req *matching.Request) (string, error)
}

// MatchHandler serves POST /api/match. A nil Matcher means the server was
// started without GEMINI_API_KEY; the handler then reports a configuration
// error without touching the network.
type MatchHandler struct {
	Matcher Matcher
}

func NewMatchHandler(m Matcher) *MatchHandler {
	return &MatchHandler{Matcher: m}
}

// Match validates the request, makes exactly one upstream call and relays
// the generated JSON array verbatim as the response body.
func (h *MatchHandler) Match(c echo.Context) error {
	var req matching.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if h.Matcher == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "missing GEMINI_API_KEY"})
	}

	reqID := uuid.NewString()
	log.Printf("match request %s: %d candidates, %d option(s)", reqID, len(req.Candidates), req.UserOptionsCount)

	text, err := h.Matcher.MatchCandidates(c.Request().Context(), &req)
	if err != nil {
		// Full upstream diagnostics stay in the log; the caller only
		// gets the tag-level message.
		var merr *matching.Error
		if errors.As(err, &merr) && merr.Err != nil {
			log.Printf("match request %s failed: %s: %v", reqID, merr.Message, merr.Err)
		} else {
			log.Printf("match request %s failed: %v", reqID, err)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	log.Printf("match request %s completed", reqID)
	return c.JSONBlob(http.StatusOK, []byte(text))
}
