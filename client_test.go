package bustime

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// newFixtureServer serves canned Bustime responses for route "1", the way the
// production API answers, and records the raw query of the last request.
func newFixtureServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var lastQuery string

	serveFixture := func(w http.ResponseWriter, name string) {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Errorf("failed to read fixture %s: %v", name, err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/bustime/api/v2/getroutes", func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.RawQuery
		serveFixture(w, "getroutes.json")
	})
	mux.HandleFunc("/bustime/api/v2/getdirections", func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.RawQuery
		if r.URL.Query().Get("rt") != "1" {
			serveFixture(w, "error.json")
			return
		}
		serveFixture(w, "getdirections_rt1.json")
	})
	mux.HandleFunc("/bustime/api/v2/getstops", func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.RawQuery
		q := r.URL.Query()
		if q.Get("rt") != "1" || q.Get("dir") != "Northbound" {
			serveFixture(w, "error.json")
			return
		}
		serveFixture(w, "getstops_rt1_northbound.json")
	})
	mux.HandleFunc("/bustime/api/v2/getpredictions", func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.RawQuery
		serveFixture(w, "getpredictions.json")
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &lastQuery
}

func newTestClient(t *testing.T) (*Client, *string) {
	t.Helper()
	srv, lastQuery := newFixtureServer(t)
	return NewClient(testKey, WithBaseURL(srv.URL+"/bustime/api/v2/")), lastQuery
}

func TestClient_Routes(t *testing.T) {
	client, _ := newTestClient(t)

	routes, err := client.Routes()
	if err != nil {
		t.Fatalf("Routes failed: %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("got %d routes, want 3", len(routes))
	}
	if routes[0].RouteName != "Bronzeville/Union Station" {
		t.Errorf("RouteName = %q, want %q", routes[0].RouteName, "Bronzeville/Union Station")
	}
}

// TestClient_Directions_Route1 mirrors the canonical route "1" scenario:
// Northbound first, Southbound second.
func TestClient_Directions_Route1(t *testing.T) {
	client, _ := newTestClient(t)

	directions, err := client.Directions("1")
	if err != nil {
		t.Fatalf("Directions failed: %v", err)
	}
	if len(directions) != 2 {
		t.Fatalf("got %d directions, want 2", len(directions))
	}
	if directions[0].Name != "Northbound" {
		t.Errorf("first direction = %q, want %q", directions[0].Name, "Northbound")
	}
	if directions[1].Name != "Southbound" {
		t.Errorf("second direction = %q, want %q", directions[1].Name, "Southbound")
	}
}

func TestClient_Stops_Route1Northbound(t *testing.T) {
	client, _ := newTestClient(t)

	stops, err := client.Stops("1", "Northbound")
	if err != nil {
		t.Fatalf("Stops failed: %v", err)
	}
	if len(stops) == 0 {
		t.Fatal("got no stops")
	}
	if stops[0].Name != "1509 S Michigan" {
		t.Errorf("first stop = %q, want %q", stops[0].Name, "1509 S Michigan")
	}
}

// TestClient_Predictions_QueryOrder checks the wire query carries the
// parameters in the documented order: key, stpid, rt, top, format.
func TestClient_Predictions_QueryOrder(t *testing.T) {
	client, lastQuery := newTestClient(t)

	predictions, err := client.Predictions("1234", "1", 5)
	if err != nil {
		t.Fatalf("Predictions failed: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("got %d predictions, want 2", len(predictions))
	}

	want := "key=testkey&stpid=1234&rt=1&top=5&format=json"
	if *lastQuery != want {
		t.Errorf("query = %q, want %q", *lastQuery, want)
	}
	if predictions[0].Countdown != "7" {
		t.Errorf("Countdown = %q, want %q", predictions[0].Countdown, "7")
	}
	if !predictions[1].Delayed {
		t.Error("second prediction should be delayed")
	}
}

// TestClient_UpstreamError checks an error envelope fails the fetch with the
// verbatim message.
func TestClient_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Directions("9999")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error should be an APIError, got %T: %v", err, err)
	}
	if apiErr.Msg != "No data found for parameter" {
		t.Errorf("Msg = %q, want the verbatim upstream message", apiErr.Msg)
	}
}

// TestClient_TransportError checks a non-2xx answer surfaces as a
// TransportError with the status attached.
func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(testKey, WithBaseURL(srv.URL+"/"))

	_, err := client.Routes()
	var trErr *TransportError
	if !errors.As(err, &trErr) {
		t.Fatalf("error should be a TransportError, got %T: %v", err, err)
	}
	if trErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", trErr.Status)
	}
}

// TestBusLine_InitializeDirections covers the dependent fetch chain the
// domain model exposes: a line populates its directions, then one direction
// populates its stops.
func TestBusLine_InitializeDirections(t *testing.T) {
	client, _ := newTestClient(t)

	line := BusLine{RouteCode: "1", RouteName: "Bronzeville/Union Station", RouteColor: "#ffffff"}
	if err := line.InitializeDirections(client); err != nil {
		t.Fatalf("InitializeDirections failed: %v", err)
	}
	if line.Directions[0].Name != "Northbound" || line.Directions[1].Name != "Southbound" {
		t.Fatalf("directions = %v, want Northbound then Southbound", line.Directions)
	}

	dir := &line.Directions[0]
	if err := dir.InitializeStops(client, line.RouteCode); err != nil {
		t.Fatalf("InitializeStops failed: %v", err)
	}
	if dir.Stops[0].Name != "1509 S Michigan" {
		t.Errorf("first stop = %q, want %q", dir.Stops[0].Name, "1509 S Michigan")
	}
}

// TestBusLine_InitializeDirections_Overwrites checks a second initialization
// replaces stale values instead of appending.
func TestBusLine_InitializeDirections_Overwrites(t *testing.T) {
	client, _ := newTestClient(t)

	line := BusLine{RouteCode: "1"}
	line.Directions = []Direction{{Name: "Westbound"}}
	if err := line.InitializeDirections(client); err != nil {
		t.Fatalf("InitializeDirections failed: %v", err)
	}
	if len(line.Directions) != 2 || line.Directions[0].Name != "Northbound" {
		t.Errorf("directions = %v, want the fetched Northbound/Southbound pair", line.Directions)
	}
}
