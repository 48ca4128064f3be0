package ldbws

import (
	"context"
	"errors"

	"github.com/railboard/railboard/pkg/nationalrail"
)

// ServiceDetails fetches the full record of one service using an ID
// taken from a board. IDs expire shortly after the service leaves the
// board it was read from; an expired ID comes back as a SOAP fault,
// surfaced here as an UpstreamError.
func (s *Session) ServiceDetails(ctx context.Context, serviceID string) (*nationalrail.ServiceDetails, error) {
	if serviceID == "" {
		return nil, &nationalrail.ValidationError{Field: "serviceID", Message: "service ID is required"}
	}

	req := &serviceDetailsRequest{ServiceID: serviceID}

	var resp serviceDetailsResponse
	if err := s.client.CallContext(ctx, actionGetServiceDetails, req, &resp); err != nil {
		return nil, &nationalrail.UpstreamError{Op: "GetServiceDetails", Err: err}
	}
	if resp.Result == nil {
		return nil, &nationalrail.UpstreamError{Op: "GetServiceDetails", Err: errors.New("response contained no GetServiceDetailsResult")}
	}

	return detailsFromResult(resp.Result), nil
}
