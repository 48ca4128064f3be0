package models

import (
	"time"

	"github.com/railboard/railboard/pkg/nationalrail"
)

// Board is the JSON representation of a station departure board.
type Board struct {
	GeneratedAt       time.Time `json:"generatedAt"`
	StationName       string    `json:"stationName"`
	CRS               string    `json:"crs"`
	FilterStationName string    `json:"filterStationName,omitempty"`
	FilterCRS         string    `json:"filterCrs,omitempty"`
	FilterDirection   string    `json:"filterDirection,omitempty"`
	Messages          []string  `json:"messages,omitempty"`
	PlatformAvailable bool      `json:"platformAvailable"`
	ServicesAvailable bool      `json:"servicesAvailable"`
	Services          []Service `json:"services"`
}

// Service is the JSON representation of a single board entry.
type Service struct {
	ID                 string     `json:"id"`
	RSID               string     `json:"rsid,omitempty"`
	Type               string     `json:"type"`
	ScheduledArrival   string     `json:"scheduledArrival,omitempty"`
	EstimatedArrival   string     `json:"estimatedArrival,omitempty"`
	ScheduledDeparture string     `json:"scheduledDeparture,omitempty"`
	EstimatedDeparture string     `json:"estimatedDeparture,omitempty"`
	Platform           string     `json:"platform,omitempty"`
	Operator           string     `json:"operator,omitempty"`
	OperatorCode       string     `json:"operatorCode,omitempty"`
	Origins            []Location `json:"origins,omitempty"`
	Destinations       []Location `json:"destinations,omitempty"`
	Length             int        `json:"length,omitempty"`
	Cancelled          bool       `json:"cancelled,omitempty"`
	CancelReason       string     `json:"cancelReason,omitempty"`
	DelayReason        string     `json:"delayReason,omitempty"`
}

// Location is the JSON representation of a service endpoint station.
type Location struct {
	Name string `json:"name"`
	CRS  string `json:"crs"`
	Via  string `json:"via,omitempty"`
}

// ServiceDetails is the JSON representation of a single service record.
type ServiceDetails struct {
	GeneratedAt             time.Time        `json:"generatedAt"`
	Type                    string           `json:"type"`
	StationName             string           `json:"stationName"`
	CRS                     string           `json:"crs"`
	Operator                string           `json:"operator,omitempty"`
	OperatorCode            string           `json:"operatorCode,omitempty"`
	RSID                    string           `json:"rsid,omitempty"`
	Platform                string           `json:"platform,omitempty"`
	Length                  int              `json:"length,omitempty"`
	Cancelled               bool             `json:"cancelled,omitempty"`
	CancelReason            string           `json:"cancelReason,omitempty"`
	DelayReason             string           `json:"delayReason,omitempty"`
	OverdueMessage          string           `json:"overdueMessage,omitempty"`
	ScheduledArrival        string           `json:"scheduledArrival,omitempty"`
	EstimatedArrival        string           `json:"estimatedArrival,omitempty"`
	ActualArrival           string           `json:"actualArrival,omitempty"`
	ScheduledDeparture      string           `json:"scheduledDeparture,omitempty"`
	EstimatedDeparture      string           `json:"estimatedDeparture,omitempty"`
	ActualDeparture         string           `json:"actualDeparture,omitempty"`
	PreviousCallingPoints   [][]CallingPoint `json:"previousCallingPoints,omitempty"`
	SubsequentCallingPoints [][]CallingPoint `json:"subsequentCallingPoints,omitempty"`
}

// CallingPoint is the JSON representation of one stop on a service route.
type CallingPoint struct {
	Name      string `json:"name"`
	CRS       string `json:"crs"`
	Scheduled string `json:"scheduled,omitempty"`
	Estimated string `json:"estimated,omitempty"`
	Actual    string `json:"actual,omitempty"`
	Cancelled bool   `json:"cancelled,omitempty"`
	Length    int    `json:"length,omitempty"`
}

// BoardFromDomain converts a domain board into its API shape.
func BoardFromDomain(b *nationalrail.Board) *Board {
	out := &Board{
		GeneratedAt:       b.GeneratedAt,
		StationName:       b.StationName,
		CRS:               b.CRS,
		FilterStationName: b.FilterStationName,
		FilterCRS:         b.FilterCRS,
		FilterDirection:   string(b.FilterDirection),
		Messages:          b.Messages,
		PlatformAvailable: b.PlatformAvailable,
		ServicesAvailable: b.ServicesAvailable,
		Services:          make([]Service, 0, len(b.TrainServices)+len(b.BusServices)+len(b.FerryServices)),
	}
	for _, s := range b.Services() {
		out.Services = append(out.Services, serviceFromDomain(s))
	}
	return out
}

func serviceFromDomain(s nationalrail.Service) Service {
	return Service{
		ID:                 s.ID,
		RSID:               s.RSID,
		Type:               string(s.Type),
		ScheduledArrival:   s.ScheduledArrival,
		EstimatedArrival:   s.EstimatedArrival,
		ScheduledDeparture: s.ScheduledDeparture,
		EstimatedDeparture: s.EstimatedDeparture,
		Platform:           s.Platform,
		Operator:           s.Operator,
		OperatorCode:       s.OperatorCode,
		Origins:            locationsFromDomain(s.Origins),
		Destinations:       locationsFromDomain(s.Destinations),
		Length:             s.Length,
		Cancelled:          s.Cancelled,
		CancelReason:       s.CancelReason,
		DelayReason:        s.DelayReason,
	}
}

func locationsFromDomain(locs []nationalrail.Location) []Location {
	if len(locs) == 0 {
		return nil
	}
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		out = append(out, Location{Name: l.Name, CRS: l.CRS, Via: l.Via})
	}
	return out
}

// ServiceDetailsFromDomain converts domain service details into their API shape.
func ServiceDetailsFromDomain(d *nationalrail.ServiceDetails) *ServiceDetails {
	return &ServiceDetails{
		GeneratedAt:             d.GeneratedAt,
		Type:                    string(d.Type),
		StationName:             d.StationName,
		CRS:                     d.CRS,
		Operator:                d.Operator,
		OperatorCode:            d.OperatorCode,
		RSID:                    d.RSID,
		Platform:                d.Platform,
		Length:                  d.Length,
		Cancelled:               d.Cancelled,
		CancelReason:            d.CancelReason,
		DelayReason:             d.DelayReason,
		OverdueMessage:          d.OverdueMessage,
		ScheduledArrival:        d.ScheduledArrival,
		EstimatedArrival:        d.EstimatedArrival,
		ActualArrival:           d.ActualArrival,
		ScheduledDeparture:      d.ScheduledDeparture,
		EstimatedDeparture:      d.EstimatedDeparture,
		ActualDeparture:         d.ActualDeparture,
		PreviousCallingPoints:   callingPointListsFromDomain(d.PreviousCallingPoints),
		SubsequentCallingPoints: callingPointListsFromDomain(d.SubsequentCallingPoints),
	}
}

func callingPointListsFromDomain(lists [][]nationalrail.CallingPoint) [][]CallingPoint {
	if len(lists) == 0 {
		return nil
	}
	out := make([][]CallingPoint, 0, len(lists))
	for _, list := range lists {
		points := make([]CallingPoint, 0, len(list))
		for _, cp := range list {
			points = append(points, CallingPoint{
				Name:      cp.Name,
				CRS:       cp.CRS,
				Scheduled: cp.Scheduled,
				Estimated: cp.Estimated,
				Actual:    cp.Actual,
				Cancelled: cp.Cancelled,
				Length:    cp.Length,
			})
		}
		out = append(out, points)
	}
	return out
}
