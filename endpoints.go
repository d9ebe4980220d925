package bustime

// Endpoint is one of the four operations the Bustime API serves. The zero
// value is not a valid endpoint.
type Endpoint int

const (
	// EndpointRoutes returns the list of bus lines in service.
	EndpointRoutes Endpoint = iota + 1

	// EndpointDirections returns the directions travelled by a route.
	// Requires: rt.
	EndpointDirections

	// EndpointStops returns the stops along a route and direction.
	// Requires: rt, dir.
	EndpointStops

	// EndpointPredictions returns arrival/departure predictions.
	// Requires: stpid, rt, top.
	EndpointPredictions
)

// Path returns the endpoint's wire path segment, appended directly after the
// API base URL.
func (e Endpoint) Path() string {
	switch e {
	case EndpointRoutes:
		return "getroutes"
	case EndpointDirections:
		return "getdirections"
	case EndpointStops:
		return "getstops"
	case EndpointPredictions:
		return "getpredictions"
	}
	return ""
}

// resource returns the key under "bustime-response" that carries the
// endpoint's payload array.
func (e Endpoint) resource() string {
	switch e {
	case EndpointRoutes:
		return "routes"
	case EndpointDirections:
		return "directions"
	case EndpointStops:
		return "stops"
	case EndpointPredictions:
		return "prd"
	}
	return ""
}

// RequiredParams lists the query parameters the upstream API expects for the
// endpoint, in the order requests are conventionally built. The URL builder
// does not enforce this set; a request missing a required parameter is
// answered by the API with an error envelope.
func (e Endpoint) RequiredParams() []Parameter {
	switch e {
	case EndpointDirections:
		return []Parameter{ParamRoute}
	case EndpointStops:
		return []Parameter{ParamRoute, ParamDirection}
	case EndpointPredictions:
		return []Parameter{ParamStopID, ParamRoute, ParamLimit}
	}
	return nil
}

func (e Endpoint) String() string { return e.Path() }
