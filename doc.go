// Package bustime is a typed client for the CTA Bustime (BusTracker) HTTP
// API v2.
//
// It covers the four endpoints the API exposes:
//   - getroutes: all bus lines in service
//   - getdirections: the directions travelled by one route
//   - getstops: the stops along one route and direction
//   - getpredictions: arrival/departure predictions for stops
//
// The main type is Client, which holds the request configuration (base URL,
// API key, HTTP client) and nothing else; every fetch is a pure
// build-send-decode cycle, so one Client may be shared across goroutines.
package bustime
