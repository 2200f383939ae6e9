// Package metrics defines the request-observability hook for the SDK.
// The dispatch core records one observation per issued request.
package metrics

import "time"

type Recorder interface {
	// ObserveRequest records one completed HTTP request. Status is 0 when no
	// response arrived.
	ObserveRequest(method, path string, status int, duration time.Duration)
}
