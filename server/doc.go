// Package server exposes the Bustime fetch operations as a small JSON web
// API:
//
//	GET /api/health
//	GET /api/routes
//	GET /api/routes/:rt/directions
//	GET /api/routes/:rt/directions/:dir/stops
//	GET /api/predictions?stpid=...&rt=...&top=...
//
// An upstream error envelope surfaces as 502 with the verbatim message;
// missing required query parameters are a 400.
package server
