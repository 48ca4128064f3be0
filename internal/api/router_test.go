package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railboard/railboard/internal/api"
	"github.com/railboard/railboard/internal/api/models"
	"github.com/railboard/railboard/pkg/nationalrail"
)

// stubProvider records the request it was given and returns canned data.
type stubProvider struct {
	lastBoardRequest  nationalrail.BoardRequest
	lastServiceID     string
	board             *nationalrail.Board
	details           *nationalrail.ServiceDetails
	boardErr          error
	serviceDetailsErr error
}

func (s *stubProvider) StationBoard(_ context.Context, req nationalrail.BoardRequest) (*nationalrail.Board, error) {
	s.lastBoardRequest = req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.boardErr != nil {
		return nil, s.boardErr
	}
	return s.board, nil
}

func (s *stubProvider) ServiceDetails(_ context.Context, serviceID string) (*nationalrail.ServiceDetails, error) {
	s.lastServiceID = serviceID
	if s.serviceDetailsErr != nil {
		return nil, s.serviceDetailsErr
	}
	return s.details, nil
}

func testBoard() *nationalrail.Board {
	return &nationalrail.Board{
		GeneratedAt:       time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		StationName:       "London Paddington",
		CRS:               "PAD",
		PlatformAvailable: true,
		ServicesAvailable: true,
		TrainServices: []nationalrail.Service{
			{
				ID:                 "svc-1",
				Type:               nationalrail.ServiceTypeTrain,
				ScheduledDeparture: "09:30",
				EstimatedDeparture: "On time",
				Platform:           "4",
				Operator:           "Great Western Railway",
				OperatorCode:       "GW",
				Destinations:       []nationalrail.Location{{Name: "Reading", CRS: "RDG"}},
			},
		},
	}
}

func newTestRouter(provider nationalrail.BoardProvider) http.Handler {
	return api.NewRouter(api.RouterConfig{
		Version:   "test",
		BuildTime: "2026-01-01T00:00:00Z",
		Logger:    zerolog.New(io.Discard),
		Boards:    provider,
	})
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var health models.Health
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestRouter_GetBoard(t *testing.T) {
	provider := &stubProvider{board: testBoard()}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/boards/pad?rows=5&to=rdg&timeOffset=-30", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// CRS codes are upper-cased before they reach the provider.
	assert.Equal(t, "PAD", provider.lastBoardRequest.CRS)
	assert.Equal(t, 5, provider.lastBoardRequest.Rows)
	assert.Equal(t, "RDG", provider.lastBoardRequest.ToFilterCRS)
	require.NotNil(t, provider.lastBoardRequest.TimeOffset)
	assert.Equal(t, -30, *provider.lastBoardRequest.TimeOffset)
	assert.Nil(t, provider.lastBoardRequest.TimeWindow)
	assert.True(t, provider.lastBoardRequest.Departures)
	assert.False(t, provider.lastBoardRequest.Arrivals)

	var board models.Board
	err := json.Unmarshal(w.Body.Bytes(), &board)
	require.NoError(t, err)

	assert.Equal(t, "London Paddington", board.StationName)
	assert.Equal(t, "PAD", board.CRS)
	require.Len(t, board.Services, 1)
	assert.Equal(t, "svc-1", board.Services[0].ID)
	assert.Equal(t, "train", board.Services[0].Type)
	assert.Equal(t, "Reading", board.Services[0].Destinations[0].Name)
}

func TestRouter_GetBoard_ArrivalsFlags(t *testing.T) {
	provider := &stubProvider{board: testBoard()}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/boards/PAD?arrivals=true&departures=false", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, provider.lastBoardRequest.Arrivals)
	assert.False(t, provider.lastBoardRequest.Departures)
}

func TestRouter_GetBoard_MalformedQuery(t *testing.T) {
	router := newTestRouter(&stubProvider{board: testBoard()})

	req := httptest.NewRequest(http.MethodGet, "/v1/boards/PAD?rows=lots", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "rows", problem.Errors[0].Field)
	assert.NotEmpty(t, problem.TraceID)
}

func TestRouter_GetBoard_ValidationError(t *testing.T) {
	router := newTestRouter(&stubProvider{board: testBoard()})

	req := httptest.NewRequest(http.MethodGet, "/v1/boards/PAD?rows=500", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "rows", problem.Errors[0].Field)
}

func TestRouter_GetBoard_UpstreamError(t *testing.T) {
	provider := &stubProvider{
		boardErr: &nationalrail.UpstreamError{
			Op:  "GetDepartureBoard",
			Err: io.ErrUnexpectedEOF,
		},
	}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/boards/PAD", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var problem models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &problem)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeUpstream, problem.Type)
}

func TestRouter_GetService(t *testing.T) {
	provider := &stubProvider{
		details: &nationalrail.ServiceDetails{
			GeneratedAt:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			Type:               nationalrail.ServiceTypeTrain,
			StationName:        "London Paddington",
			CRS:                "PAD",
			Operator:           "Great Western Railway",
			ScheduledDeparture: "09:30",
			SubsequentCallingPoints: [][]nationalrail.CallingPoint{
				{{Name: "Reading", CRS: "RDG", Scheduled: "09:58"}},
			},
		},
	}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "svc-1", provider.lastServiceID)

	var details models.ServiceDetails
	err := json.Unmarshal(w.Body.Bytes(), &details)
	require.NoError(t, err)

	assert.Equal(t, "London Paddington", details.StationName)
	require.Len(t, details.SubsequentCallingPoints, 1)
	assert.Equal(t, "Reading", details.SubsequentCallingPoints[0][0].Name)
}

func TestRouter_GetService_UpstreamError(t *testing.T) {
	provider := &stubProvider{
		serviceDetailsErr: &nationalrail.UpstreamError{
			Op:  "GetServiceDetails",
			Err: io.ErrUnexpectedEOF,
		},
	}
	router := newTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-gone", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRouter_RequestID_Generated(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_RequestID_Preserved(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	req.Header.Set("X-Request-Id", "custom_request_id")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "custom_request_id", w.Header().Get("X-Request-Id"))
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/nonexistent", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
