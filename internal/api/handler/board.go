package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/railboard/railboard/internal/api/middleware"
	"github.com/railboard/railboard/internal/api/models"
	"github.com/railboard/railboard/internal/api/response"
	"github.com/railboard/railboard/pkg/nationalrail"
)

// BoardHandler serves live departure board lookups.
type BoardHandler struct {
	boards nationalrail.BoardProvider
	logger zerolog.Logger
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boards nationalrail.BoardProvider, logger zerolog.Logger) *BoardHandler {
	return &BoardHandler{
		boards: boards,
		logger: logger,
	}
}

// GetBoard handles GET /v1/boards/{crs}.
//
// Query parameters:
//
//	rows         number of services to return (1-150, default 10)
//	departures   include departing services (default true)
//	arrivals     include arriving services (default false)
//	from         filter to services that have called at this CRS
//	to           filter to services that will call at this CRS
//	timeOffset   minutes relative to now for the window start (-120 to 120)
//	timeWindow   minutes after the window start to include (-120 to 120)
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	req := nationalrail.NewBoardRequest(strings.ToUpper(chi.URLParam(r, "crs")))

	q := r.URL.Query()

	var fieldErrs []models.FieldError

	if v := q.Get("rows"); v != "" {
		rows, err := strconv.Atoi(v)
		if err != nil {
			fieldErrs = append(fieldErrs, models.FieldError{Field: "rows", Message: "must be an integer"})
		} else {
			req.Rows = rows
		}
	}
	if v := q.Get("departures"); v != "" {
		departures, err := strconv.ParseBool(v)
		if err != nil {
			fieldErrs = append(fieldErrs, models.FieldError{Field: "departures", Message: "must be a boolean"})
		} else {
			req.Departures = departures
		}
	}
	if v := q.Get("arrivals"); v != "" {
		arrivals, err := strconv.ParseBool(v)
		if err != nil {
			fieldErrs = append(fieldErrs, models.FieldError{Field: "arrivals", Message: "must be a boolean"})
		} else {
			req.Arrivals = arrivals
		}
	}
	req.FromFilterCRS = strings.ToUpper(q.Get("from"))
	req.ToFilterCRS = strings.ToUpper(q.Get("to"))

	if v := q.Get("timeOffset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			fieldErrs = append(fieldErrs, models.FieldError{Field: "timeOffset", Message: "must be an integer"})
		} else {
			req.TimeOffset = &offset
		}
	}
	if v := q.Get("timeWindow"); v != "" {
		window, err := strconv.Atoi(v)
		if err != nil {
			fieldErrs = append(fieldErrs, models.FieldError{Field: "timeWindow", Message: "must be an integer"})
		} else {
			req.TimeWindow = &window
		}
	}

	if len(fieldErrs) > 0 {
		response.BadRequest(w, r, "invalid query parameters", fieldErrs)
		return
	}

	board, err := h.boards.StationBoard(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.BoardFromDomain(board))
}

// GetService handles GET /v1/services/{serviceID}.
func (h *BoardHandler) GetService(w http.ResponseWriter, r *http.Request) {
	details, err := h.boards.ServiceDetails(r.Context(), chi.URLParam(r, "serviceID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.ServiceDetailsFromDomain(details))
}

func (h *BoardHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *nationalrail.ValidationError
	if errors.As(err, &validationErr) {
		response.BadRequest(w, r, "invalid board request", []models.FieldError{
			{Field: validationErr.Field, Message: validationErr.Message},
		})
		return
	}

	var upstreamErr *nationalrail.UpstreamError
	if errors.As(err, &upstreamErr) {
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Str("op", upstreamErr.Op).
			Msg("upstream board lookup failed")
		response.BadGateway(w, r, "the live departures service did not return a usable response")
		return
	}

	h.logger.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Msg("board lookup failed")
	response.InternalError(w, r, "unexpected error")
}
