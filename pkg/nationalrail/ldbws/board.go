package ldbws

import (
	"context"
	"encoding/xml"
	"errors"

	"github.com/railboard/railboard/pkg/nationalrail"
)

// StationBoard fetches the board described by req, selecting the remote
// operation from the departures/arrivals flags: both set uses the
// combined board, one set uses that side's board, neither is a
// validation error. It makes exactly one SOAP call.
func (s *Session) StationBoard(ctx context.Context, req nationalrail.BoardRequest) (*nationalrail.Board, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var op, action string
	switch {
	case req.Departures && req.Arrivals:
		op, action = elemGetArrivalDepartureBoardRequest, actionGetArrivalDepartureBoard
	case req.Departures:
		op, action = elemGetDepartureBoardRequest, actionGetDepartureBoard
	default:
		op, action = elemGetArrivalBoardRequest, actionGetArrivalBoard
	}

	params := s.boardParams(req, op)

	var resp stationBoardResponse
	if err := s.client.CallContext(ctx, action, params, &resp); err != nil {
		return nil, &nationalrail.UpstreamError{Op: opName(op), Err: err}
	}
	if resp.Result == nil {
		return nil, &nationalrail.UpstreamError{Op: opName(op), Err: errors.New("response contained no GetStationBoardResult")}
	}

	return boardFromResult(resp.Result), nil
}

// boardParams builds the outgoing parameter set. Station code and row
// count are always present; the filter pair only when a filter station
// was supplied, the time bounds only when the caller set them.
func (s *Session) boardParams(req nationalrail.BoardRequest, elem string) *boardRequest {
	rows := req.Rows
	if rows == 0 {
		rows = nationalrail.DefaultRows
	}

	params := &boardRequest{
		XMLName:    xml.Name{Space: ldbNamespace, Local: elem},
		NumRows:    rows,
		CRS:        req.CRS,
		TimeOffset: req.TimeOffset,
		TimeWindow: req.TimeWindow,
	}

	filterCRS, direction, dropped := req.EffectiveFilter()
	if dropped {
		s.logger.Warn().
			Str("crs", req.CRS).
			Str("to_filter_crs", req.ToFilterCRS).
			Str("from_filter_crs", req.FromFilterCRS).
			Msg("board can only be filtered on one of from and to; both provided, using the to filter")
	}
	if filterCRS != "" {
		params.FilterCRS = filterCRS
		params.FilterType = string(direction)
	}

	return params
}

// opName strips the Request suffix off a request element name for use
// in errors and logs.
func opName(elem string) string {
	const suffix = "Request"
	if len(elem) > len(suffix) && elem[len(elem)-len(suffix):] == suffix {
		return elem[:len(elem)-len(suffix)]
	}
	return elem
}
