package nationalrail

// Limits imposed by the upstream web service on board requests.
const (
	MinRows = 1
	MaxRows = 150

	// MinTimeMinutes and MaxTimeMinutes bound both the time offset and the
	// time window, in minutes relative to now.
	MinTimeMinutes = -120
	MaxTimeMinutes = 120

	// DefaultRows is used when a request leaves Rows unset.
	DefaultRows = 10
)

// BoardRequest describes one board query.
//
// TimeOffset and TimeWindow are pointers so that "not set" is
// distinguishable from zero: when nil they are omitted from the outgoing
// request entirely and the upstream defaults (offset 0, window 120)
// apply.
type BoardRequest struct {
	// CRS is the station the board is for. Required.
	CRS string

	// Rows is the maximum number of services to return, 1 to 150. Zero
	// means DefaultRows.
	Rows int

	// Departures and Arrivals select which services appear on the board.
	// At least one must be true.
	Departures bool
	Arrivals   bool

	// FromFilterCRS restricts the board to services that have already
	// called at the given station; ToFilterCRS to services that will call
	// there. Only one can take effect: if both are set the to filter wins
	// and the from filter is dropped.
	FromFilterCRS string
	ToFilterCRS   string

	// TimeOffset shifts the start of the board's time window, in minutes
	// from now.
	TimeOffset *int

	// TimeWindow is how far past the offset the board extends, in
	// minutes. Negative values place the window before the offset.
	TimeWindow *int
}

// NewBoardRequest returns a departures-only request for crs with the
// default row count.
func NewBoardRequest(crs string) BoardRequest {
	return BoardRequest{
		CRS:        crs,
		Rows:       DefaultRows,
		Departures: true,
	}
}

// Validate checks the request parameters. It never performs network
// I/O; providers call it before issuing the remote query.
func (r BoardRequest) Validate() error {
	if r.CRS == "" {
		return &ValidationError{Field: "crs", Message: "station CRS code is required"}
	}
	if !r.Departures && !r.Arrivals {
		return &ValidationError{Field: "departures/arrivals", Message: "at least one of departures or arrivals must be requested"}
	}
	if r.Rows != 0 && (r.Rows < MinRows || r.Rows > MaxRows) {
		return &ValidationError{Field: "rows", Message: "must be between 1 and 150"}
	}
	if r.TimeOffset != nil && (*r.TimeOffset < MinTimeMinutes || *r.TimeOffset > MaxTimeMinutes) {
		return &ValidationError{Field: "timeOffset", Message: "must be between -120 and 120 minutes"}
	}
	if r.TimeWindow != nil && (*r.TimeWindow < MinTimeMinutes || *r.TimeWindow > MaxTimeMinutes) {
		return &ValidationError{Field: "timeWindow", Message: "must be between -120 and 120 minutes"}
	}
	return nil
}

// EffectiveFilter resolves the from/to filter pair into the single
// filter the request will carry. dropped is true when both filters were
// supplied and the from filter was discarded; callers should log a
// warning in that case.
func (r BoardRequest) EffectiveFilter() (crs string, direction FilterDirection, dropped bool) {
	switch {
	case r.ToFilterCRS != "":
		return r.ToFilterCRS, FilterTo, r.FromFilterCRS != ""
	case r.FromFilterCRS != "":
		return r.FromFilterCRS, FilterFrom, false
	}
	return "", "", false
}
