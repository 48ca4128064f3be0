package ldbws

import (
	"encoding/xml"
	"time"
)

// XML namespaces and SOAPAction URIs from the LDBWS contract. The
// action URIs carry the schema revision they were introduced in, which
// is why they differ from the message namespace.
const (
	ldbNamespace         = "http://thalesgroup.com/RTTI/2017-10-01/ldb/"
	commonTypesNamespace = "http://thalesgroup.com/RTTI/2010-11-01/ldb/commontypes"

	actionGetDepartureBoard        = "http://thalesgroup.com/RTTI/2012-01-13/ldb/GetDepartureBoard"
	actionGetArrivalBoard          = "http://thalesgroup.com/RTTI/2012-01-13/ldb/GetArrivalBoard"
	actionGetArrivalDepartureBoard = "http://thalesgroup.com/RTTI/2012-01-13/ldb/GetArrivalDepartureBoard"
	actionGetServiceDetails        = "http://thalesgroup.com/RTTI/2012-01-13/ldb/GetServiceDetails"
)

// Request element names within the ldb namespace, one per board
// operation. The payload shape is identical across the three.
const (
	elemGetDepartureBoardRequest        = "GetDepartureBoardRequest"
	elemGetArrivalBoardRequest          = "GetArrivalBoardRequest"
	elemGetArrivalDepartureBoardRequest = "GetArrivalDepartureBoardRequest"
)

// accessToken is the SOAP header that authenticates every call.
type accessToken struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2010-11-01/ldb/commontypes AccessToken"`

	TokenValue string `xml:"TokenValue"`
}

// boardRequest is the body of the three board operations. XMLName is
// filled in per call with the operation's element name. Field order
// matters: the schema is a sequence.
type boardRequest struct {
	XMLName xml.Name

	NumRows    int    `xml:"numRows"`
	CRS        string `xml:"crs"`
	FilterCRS  string `xml:"filterCrs,omitempty"`
	FilterType string `xml:"filterType,omitempty"`

	// Pointers so that an explicit zero is still sent while an unset
	// value is omitted and the server defaults apply.
	TimeOffset *int `xml:"timeOffset,omitempty"`
	TimeWindow *int `xml:"timeWindow,omitempty"`
}

type serviceDetailsRequest struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2017-10-01/ldb/ GetServiceDetailsRequest"`

	ServiceID string `xml:"serviceID"`
}

// stationBoardResponse decodes the body of any of the three board
// operations; the untagged XMLName accepts whichever response element
// the server sends.
type stationBoardResponse struct {
	XMLName xml.Name

	Result *stationBoardResult `xml:"GetStationBoardResult"`
}

type serviceDetailsResponse struct {
	XMLName xml.Name

	Result *serviceDetailsResult `xml:"GetServiceDetailsResult"`
}

type stationBoardResult struct {
	GeneratedAt        time.Time `xml:"generatedAt"`
	LocationName       string    `xml:"locationName"`
	CRS                string    `xml:"crs"`
	FilterLocationName string    `xml:"filterLocationName"`
	FilterCRS          string    `xml:"filtercrs"`
	FilterType         string    `xml:"filterType"`
	PlatformAvailable  bool      `xml:"platformAvailable"`

	// Absent in normal responses; the server only sends it, as false,
	// when service data is suppressed.
	AreServicesAvailable *bool `xml:"areServicesAvailable"`

	Messages []string `xml:"nrccMessages>message"`

	TrainServices []serviceItem `xml:"trainServices>service"`
	BusServices   []serviceItem `xml:"busServices>service"`
	FerryServices []serviceItem `xml:"ferryServices>service"`
}

type serviceItem struct {
	STA string `xml:"sta"`
	ETA string `xml:"eta"`
	STD string `xml:"std"`
	ETD string `xml:"etd"`

	Platform     string `xml:"platform"`
	Operator     string `xml:"operator"`
	OperatorCode string `xml:"operatorCode"`

	IsCircularRoute         bool `xml:"isCircularRoute"`
	IsCancelled             bool `xml:"isCancelled"`
	FilterLocationCancelled bool `xml:"filterLocationCancelled"`

	ServiceType string `xml:"serviceType"`

	Length      int  `xml:"length"`
	DetachFront bool `xml:"detachFront"`
	IsReverse   bool `xml:"isReverseFormation"`

	CancelReason string `xml:"cancelReason"`
	DelayReason  string `xml:"delayReason"`

	ServiceID string `xml:"serviceID"`
	RSID      string `xml:"rsid"`

	Origin      []serviceLocation `xml:"origin>location"`
	Destination []serviceLocation `xml:"destination>location"`
}

type serviceLocation struct {
	LocationName   string `xml:"locationName"`
	CRS            string `xml:"crs"`
	Via            string `xml:"via"`
	FutureChangeTo string `xml:"futureChangeTo"`
}

type serviceDetailsResult struct {
	GeneratedAt  time.Time `xml:"generatedAt"`
	RSID         string    `xml:"rsid"`
	ServiceType  string    `xml:"serviceType"`
	LocationName string    `xml:"locationName"`
	CRS          string    `xml:"crs"`
	Operator     string    `xml:"operator"`
	OperatorCode string    `xml:"operatorCode"`

	IsCancelled    bool   `xml:"isCancelled"`
	CancelReason   string `xml:"cancelReason"`
	DelayReason    string `xml:"delayReason"`
	OverdueMessage string `xml:"overdueMessage"`

	Length   int    `xml:"length"`
	Platform string `xml:"platform"`

	STA string `xml:"sta"`
	ETA string `xml:"eta"`
	ATA string `xml:"ata"`
	STD string `xml:"std"`
	ETD string `xml:"etd"`
	ATD string `xml:"atd"`

	PreviousCallingPoints   []callingPointList `xml:"previousCallingPoints>callingPointList"`
	SubsequentCallingPoints []callingPointList `xml:"subsequentCallingPoints>callingPointList"`
}

type callingPointList struct {
	CallingPoints []callingPoint `xml:"callingPoint"`
}

type callingPoint struct {
	LocationName string `xml:"locationName"`
	CRS          string `xml:"crs"`
	ST           string `xml:"st"`
	ET           string `xml:"et"`
	AT           string `xml:"at"`
	IsCancelled  bool   `xml:"isCancelled"`
	Length       int    `xml:"length"`
}
