package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/railboard/railboard/pkg/nationalrail"
)

func TestPrintBoard(t *testing.T) {
	board := &nationalrail.Board{
		GeneratedAt:       time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		StationName:       "London Paddington",
		CRS:               "PAD",
		PlatformAvailable: true,
		ServicesAvailable: true,
		Messages:          []string{"Engineering work between Slough and Reading."},
		TrainServices: []nationalrail.Service{
			{
				ScheduledDeparture: "10:32",
				EstimatedDeparture: "On time",
				Platform:           "4",
				Operator:           "Great Western Railway",
				Destinations:       []nationalrail.Location{{Name: "Bristol Temple Meads", CRS: "BRI", Via: "via Bath Spa"}},
			},
			{
				ScheduledDeparture: "10:45",
				Cancelled:          true,
				Operator:           "Elizabeth line",
				Destinations:       []nationalrail.Location{{Name: "Abbey Wood", CRS: "ABW"}},
			},
		},
	}

	var out bytes.Buffer
	printBoard(&out, board)

	text := out.String()
	assert.Contains(t, text, "London Paddington (PAD) at 10:30")
	assert.Contains(t, text, "PLAT")
	assert.Contains(t, text, "10:32")
	assert.Contains(t, text, "Bristol Temple Meads via Bath Spa")
	assert.Contains(t, text, "On time")
	assert.Contains(t, text, "Cancelled")
	assert.Contains(t, text, "Engineering work between Slough and Reading.")
}

func TestPrintBoard_NoServiceData(t *testing.T) {
	board := &nationalrail.Board{
		GeneratedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		StationName: "Norwich",
		CRS:         "NRW",
	}

	var out bytes.Buffer
	printBoard(&out, board)

	assert.Contains(t, out.String(), "No service information is available")
}

func TestPrintBoard_NoPlatformColumn(t *testing.T) {
	board := &nationalrail.Board{
		GeneratedAt:       time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		StationName:       "Reading",
		CRS:               "RDG",
		ServicesAvailable: true,
		TrainServices: []nationalrail.Service{
			{ScheduledDeparture: "10:32", EstimatedDeparture: "On time"},
		},
	}

	var out bytes.Buffer
	printBoard(&out, board)

	assert.NotContains(t, out.String(), "PLAT")
}

func TestDisplayTime_FallsBackToArrival(t *testing.T) {
	svc := nationalrail.Service{ScheduledArrival: "11:05"}
	assert.Equal(t, "11:05", displayTime(svc))

	svc.ScheduledDeparture = "11:07"
	assert.Equal(t, "11:07", displayTime(svc))
}

func TestExpected(t *testing.T) {
	assert.Equal(t, "Cancelled", expected(nationalrail.Service{Cancelled: true, EstimatedDeparture: "11:10"}))
	assert.Equal(t, "On time", expected(nationalrail.Service{EstimatedDeparture: "On time"}))
	assert.Equal(t, "Delayed", expected(nationalrail.Service{EstimatedArrival: "Delayed"}))
}
