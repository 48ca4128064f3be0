package ldbws

import (
	"github.com/railboard/railboard/pkg/nationalrail"
)

// boardFromResult converts the wire board into the domain model.
func boardFromResult(r *stationBoardResult) *nationalrail.Board {
	board := &nationalrail.Board{
		GeneratedAt:       r.GeneratedAt,
		StationName:       r.LocationName,
		CRS:               r.CRS,
		FilterStationName: r.FilterLocationName,
		FilterCRS:         r.FilterCRS,
		FilterDirection:   nationalrail.FilterDirection(r.FilterType),
		Messages:          r.Messages,
		PlatformAvailable: r.PlatformAvailable,

		// Only sent, as false, when the station is suppressing data.
		ServicesAvailable: r.AreServicesAvailable == nil || *r.AreServicesAvailable,
	}

	board.TrainServices = servicesFromItems(r.TrainServices, nationalrail.ServiceTypeTrain)
	board.BusServices = servicesFromItems(r.BusServices, nationalrail.ServiceTypeBus)
	board.FerryServices = servicesFromItems(r.FerryServices, nationalrail.ServiceTypeFerry)

	return board
}

func servicesFromItems(items []serviceItem, fallback nationalrail.ServiceType) []nationalrail.Service {
	if len(items) == 0 {
		return nil
	}
	services := make([]nationalrail.Service, 0, len(items))
	for i := range items {
		services = append(services, serviceFromItem(&items[i], fallback))
	}
	return services
}

func serviceFromItem(item *serviceItem, fallback nationalrail.ServiceType) nationalrail.Service {
	serviceType := nationalrail.ServiceType(item.ServiceType)
	if serviceType == "" {
		serviceType = fallback
	}

	return nationalrail.Service{
		ID:   item.ServiceID,
		RSID: item.RSID,
		Type: serviceType,

		ScheduledArrival:   item.STA,
		EstimatedArrival:   item.ETA,
		ScheduledDeparture: item.STD,
		EstimatedDeparture: item.ETD,

		Platform:     item.Platform,
		Operator:     item.Operator,
		OperatorCode: item.OperatorCode,

		Origins:      locationsFrom(item.Origin),
		Destinations: locationsFrom(item.Destination),

		Length: item.Length,

		Cancelled:               item.IsCancelled,
		FilterLocationCancelled: item.FilterLocationCancelled,
		CircularRoute:           item.IsCircularRoute,
		DetachFront:             item.DetachFront,
		ReverseFormation:        item.IsReverse,

		CancelReason: item.CancelReason,
		DelayReason:  item.DelayReason,
	}
}

func locationsFrom(wire []serviceLocation) []nationalrail.Location {
	if len(wire) == 0 {
		return nil
	}
	locations := make([]nationalrail.Location, 0, len(wire))
	for _, l := range wire {
		locations = append(locations, nationalrail.Location{
			Name:           l.LocationName,
			CRS:            l.CRS,
			Via:            l.Via,
			FutureChangeTo: l.FutureChangeTo,
		})
	}
	return locations
}

func detailsFromResult(r *serviceDetailsResult) *nationalrail.ServiceDetails {
	return &nationalrail.ServiceDetails{
		GeneratedAt: r.GeneratedAt,
		Type:        nationalrail.ServiceType(r.ServiceType),

		StationName: r.LocationName,
		CRS:         r.CRS,

		Operator:     r.Operator,
		OperatorCode: r.OperatorCode,
		RSID:         r.RSID,

		Platform: r.Platform,

		ScheduledArrival:   r.STA,
		EstimatedArrival:   r.ETA,
		ActualArrival:      r.ATA,
		ScheduledDeparture: r.STD,
		EstimatedDeparture: r.ETD,
		ActualDeparture:    r.ATD,

		Length: r.Length,

		Cancelled:      r.IsCancelled,
		CancelReason:   r.CancelReason,
		DelayReason:    r.DelayReason,
		OverdueMessage: r.OverdueMessage,

		PreviousCallingPoints:   callingPointListsFrom(r.PreviousCallingPoints),
		SubsequentCallingPoints: callingPointListsFrom(r.SubsequentCallingPoints),
	}
}

func callingPointListsFrom(wire []callingPointList) [][]nationalrail.CallingPoint {
	if len(wire) == 0 {
		return nil
	}
	lists := make([][]nationalrail.CallingPoint, 0, len(wire))
	for _, list := range wire {
		points := make([]nationalrail.CallingPoint, 0, len(list.CallingPoints))
		for _, p := range list.CallingPoints {
			points = append(points, nationalrail.CallingPoint{
				Name:      p.LocationName,
				CRS:       p.CRS,
				Scheduled: p.ST,
				Estimated: p.ET,
				Actual:    p.AT,
				Cancelled: p.IsCancelled,
				Length:    p.Length,
			})
		}
		lists = append(lists, points)
	}
	return lists
}
