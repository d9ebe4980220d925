package bustime

// BusLine is one route serviced by the agency, as returned by getroutes.
// Directions starts out nil and is populated on demand with
// InitializeDirections; nothing else mutates a BusLine after decoding.
type BusLine struct {
	RouteCode    string `json:"rt"`   // e.g. "1"
	RouteName    string `json:"rtnm"` // e.g. "Bronzeville/Union Station"
	RouteColor   string `json:"rtclr"`
	RouteDisplay string `json:"rtdd"`

	Directions []Direction `json:"-"`
}

// InitializeDirections fills the Directions list by fetching it from the API.
// Any previous value is overwritten.
func (b *BusLine) InitializeDirections(c *Client) error {
	directions, err := c.Directions(b.RouteCode)
	if err != nil {
		return err
	}
	b.Directions = directions
	return nil
}

// Direction is one direction travelled by a route, as returned by
// getdirections. Stops starts out nil and is populated on demand with
// InitializeStops.
type Direction struct {
	Name string `json:"dir"` // e.g. "Northbound"

	Stops []Stop `json:"-"`
}

// InitializeStops fills the Stops list by fetching the stops along routeCode
// in this direction. Any previous value is overwritten.
func (d *Direction) InitializeStops(c *Client, routeCode string) error {
	stops, err := c.Stops(routeCode, d.Name)
	if err != nil {
		return err
	}
	d.Stops = stops
	return nil
}

func (d Direction) String() string { return d.Name }

// Stop is one stop along a route direction, as returned by getstops.
type Stop struct {
	ID        string  `json:"stpid"`
	Name      string  `json:"stpnm"` // e.g. "1509 S Michigan"
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Prediction is one arrival or departure estimate, as returned by
// getpredictions. Timestamps stay in the API's "yyyyMMdd HH:mm" wire layout;
// GeneratedAt and PredictedAt parse them.
type Prediction struct {
	Timestamp     string `json:"tmstmp"` // when the prediction was generated
	Type          string `json:"typ"`    // "A" arrival, "D" departure
	StopID        string `json:"stpid"`
	StopName      string `json:"stpnm"`
	VehicleID     string `json:"vid"`
	DistanceFeet  int    `json:"dstp"` // distance left to the stop
	RouteCode     string `json:"rt"`
	RouteDisplay  string `json:"rtdd"`
	RouteDir      string `json:"rtdir"`
	Destination   string `json:"des"`
	PredictedTime string `json:"prdtm"`
	Delayed       bool   `json:"dly"`
	Countdown     string `json:"prdctdn"` // minutes left, or "DUE"
	BlockID       string `json:"tablockid"`
	TripID        string `json:"tatripid"`
	Zone          string `json:"zone"`
}
