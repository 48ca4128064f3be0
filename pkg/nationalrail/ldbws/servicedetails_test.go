package ldbws_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railboard/railboard/pkg/nationalrail"
)

const serviceDetailsEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetServiceDetailsResponse xmlns="http://thalesgroup.com/RTTI/2017-10-01/ldb/">
      <GetServiceDetailsResult>
        <generatedAt>2024-05-01T10:35:00.0000000+01:00</generatedAt>
        <serviceType>train</serviceType>
        <locationName>Reading</locationName>
        <crs>RDG</crs>
        <operator>Great Western Railway</operator>
        <operatorCode>GW</operatorCode>
        <rsid>GW123400</rsid>
        <platform>9</platform>
        <sta>10:55</sta>
        <eta>11:02</eta>
        <std>10:57</std>
        <etd>11:04</etd>
        <delayReason>This train has been delayed by a slow-running preceding train</delayReason>
        <previousCallingPoints>
          <callingPointList>
            <callingPoint>
              <locationName>London Paddington</locationName>
              <crs>PAD</crs>
              <st>10:32</st>
              <at>10:33</at>
            </callingPoint>
          </callingPointList>
        </previousCallingPoints>
        <subsequentCallingPoints>
          <callingPointList>
            <callingPoint>
              <locationName>Bath Spa</locationName>
              <crs>BTH</crs>
              <st>11:45</st>
              <et>11:52</et>
            </callingPoint>
            <callingPoint>
              <locationName>Bristol Temple Meads</locationName>
              <crs>BRI</crs>
              <st>12:00</st>
              <et>12:07</et>
            </callingPoint>
          </callingPointList>
        </subsequentCallingPoints>
      </GetServiceDetailsResult>
    </GetServiceDetailsResponse>
  </soap:Body>
</soap:Envelope>`

func TestServiceDetails(t *testing.T) {
	handler := &capturingHandler{reply: serviceDetailsEnvelope}
	ts := newTestServer(t, handler.handle)
	session := newTestSession(t, ts)

	details, err := session.ServiceDetails(context.Background(), "1234567PADTON_")
	require.NoError(t, err)

	assert.Equal(t, "http://thalesgroup.com/RTTI/2012-01-13/ldb/GetServiceDetails", handler.action)
	assert.Contains(t, handler.body, "<serviceID>1234567PADTON_</serviceID>")

	assert.Equal(t, nationalrail.ServiceTypeTrain, details.Type)
	assert.Equal(t, "Reading", details.StationName)
	assert.Equal(t, "RDG", details.CRS)
	assert.Equal(t, "9", details.Platform)
	assert.Equal(t, "10:55", details.ScheduledArrival)
	assert.Equal(t, "11:02", details.EstimatedArrival)
	assert.Contains(t, details.DelayReason, "slow-running")

	require.Len(t, details.PreviousCallingPoints, 1)
	require.Len(t, details.PreviousCallingPoints[0], 1)
	assert.Equal(t, "PAD", details.PreviousCallingPoints[0][0].CRS)
	assert.Equal(t, "10:33", details.PreviousCallingPoints[0][0].Actual)

	require.Len(t, details.SubsequentCallingPoints, 1)
	require.Len(t, details.SubsequentCallingPoints[0], 2)
	assert.Equal(t, "Bristol Temple Meads", details.SubsequentCallingPoints[0][1].Name)
}

func TestServiceDetails_EmptyID(t *testing.T) {
	ts := newTestServer(t, nil)
	session := newTestSession(t, ts)

	_, err := session.ServiceDetails(context.Background(), "")
	require.Error(t, err)

	var verr *nationalrail.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, int64(0), ts.soapCalls.Load())
}
