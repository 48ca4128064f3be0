// Package nationalrail defines the domain model for GB National Rail
// live departure boards, along with the provider interface implemented
// by transport clients such as the ldbws SOAP session.
package nationalrail

import (
	"context"
	"time"
)

// ServiceType identifies the mode of a service on a board.
type ServiceType string

const (
	ServiceTypeTrain ServiceType = "train"
	ServiceTypeBus   ServiceType = "bus"
	ServiceTypeFerry ServiceType = "ferry"
)

// FilterDirection selects whether a filter station is somewhere the
// service has already called (from) or will call later (to).
type FilterDirection string

const (
	FilterTo   FilterDirection = "to"
	FilterFrom FilterDirection = "from"
)

// BoardProvider is implemented by clients that can fetch live departure
// board data for a station.
type BoardProvider interface {
	// StationBoard fetches the board described by req. Exactly one remote
	// call is made per invocation.
	StationBoard(ctx context.Context, req BoardRequest) (*Board, error)

	// ServiceDetails fetches the full details of a single service using an
	// ID obtained from a board.
	ServiceDetails(ctx context.Context, serviceID string) (*ServiceDetails, error)
}

// Board holds the services calling at a station, as would populate a
// physical departure or arrival board.
type Board struct {
	// GeneratedAt is the upstream timestamp for this board.
	GeneratedAt time.Time

	// StationName is the display name of the board's station.
	StationName string

	// CRS is the short code of the board's station (e.g. "PAD").
	CRS string

	// FilterStationName and FilterCRS describe the filter station, if a
	// filter was applied to the request.
	FilterStationName string
	FilterCRS         string
	FilterDirection   FilterDirection

	// Messages are free-text notices that apply to the whole board, such
	// as engineering work announcements.
	Messages []string

	// PlatformAvailable reports whether platform numbers are known for
	// this station. When false a user interface should not render a
	// platform column.
	PlatformAvailable bool

	// ServicesAvailable is false when the station is returning no service
	// data at all, for example during a short-notice closure.
	ServicesAvailable bool

	// TrainServices, BusServices and FerryServices are the board rows,
	// split by mode. Replacement buses appear under BusServices.
	TrainServices []Service
	BusServices   []Service
	FerryServices []Service
}

// Services returns every row on the board regardless of mode, in board
// order within each mode.
func (b *Board) Services() []Service {
	out := make([]Service, 0, len(b.TrainServices)+len(b.BusServices)+len(b.FerryServices))
	out = append(out, b.TrainServices...)
	out = append(out, b.BusServices...)
	out = append(out, b.FerryServices...)
	return out
}

// Service is a single row on a board.
//
// Times are display strings rather than timestamps: usually "HH:MM" but
// the upstream service also sends values like "On time", "Delayed" or
// "Cancelled" in the estimated fields.
type Service struct {
	// ID identifies this service for a follow-up details lookup. It is
	// only valid for a short time after the service has left the board.
	ID string

	// RSID is the retail service ID, when known.
	RSID string

	Type ServiceType

	ScheduledArrival   string
	EstimatedArrival   string
	ScheduledDeparture string
	EstimatedDeparture string

	// Platform is empty when unknown or withheld.
	Platform string

	Operator     string
	OperatorCode string

	// Origins and Destinations may each contain more than one location
	// for services that split or join.
	Origins      []Location
	Destinations []Location

	// Length is the number of units, zero when unknown.
	Length int

	Cancelled               bool
	FilterLocationCancelled bool
	CircularRoute           bool
	DetachFront             bool
	ReverseFormation        bool

	CancelReason string
	DelayReason  string
}

// Destination returns the display name of the first destination, which
// is what a simple board renders.
func (s *Service) Destination() string {
	if len(s.Destinations) == 0 {
		return ""
	}
	return s.Destinations[0].Name
}

// Origin returns the display name of the first origin.
func (s *Service) Origin() string {
	if len(s.Origins) == 0 {
		return ""
	}
	return s.Origins[0].Name
}

// Location is an origin, destination or filter station of a service.
type Location struct {
	Name string
	CRS  string

	// Via disambiguates routes, e.g. "via Slough".
	Via string

	// FutureChangeTo is set when reaching this location requires changing
	// to another mode, e.g. a replacement bus.
	FutureChangeTo string
}

// CallingPoint is a single stop in a service's journey.
type CallingPoint struct {
	Name string
	CRS  string

	// Scheduled, Estimated and Actual are display times; at most one of
	// Estimated and Actual is set.
	Scheduled string
	Estimated string
	Actual    string

	Cancelled bool
	Length    int
}

// ServiceDetails is the full record of one service, fetched by ID.
type ServiceDetails struct {
	GeneratedAt time.Time

	Type ServiceType

	// StationName and CRS identify the board location the service ID was
	// obtained from; all times below are relative to that location.
	StationName string
	CRS         string

	Operator     string
	OperatorCode string
	RSID         string

	Platform string

	ScheduledArrival   string
	EstimatedArrival   string
	ActualArrival      string
	ScheduledDeparture string
	EstimatedDeparture string
	ActualDeparture    string

	Length int

	Cancelled      bool
	CancelReason   string
	DelayReason    string
	OverdueMessage string

	// PreviousCallingPoints holds one list per origin of the service and
	// SubsequentCallingPoints one list per destination; most services
	// have exactly one of each.
	PreviousCallingPoints   [][]CallingPoint
	SubsequentCallingPoints [][]CallingPoint
}
