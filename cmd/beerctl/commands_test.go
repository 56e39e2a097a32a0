package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const testBeerID = "6a1f7c2e-2d7b-4b0f-9d3a-8a3e0c6b1f10"

// recordingServer captures requests made by the CLI and answers with canned beers.
type recordingServer struct {
	mu       sync.Mutex
	requests []string
	bodies   []string
}

func (s *recordingServer) handler(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, r.Method+" "+r.URL.RequestURI())
	s.bodies = append(s.bodies, string(raw))
	s.mu.Unlock()

	beer := `{"id":"` + testBeerID + `","beerName":"Galaxy Cat","beerStyle":"PALE_ALE","upc":"123","quantityOnHand":5,"price":"12.99"}`
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/v1/beer":
		w.Header().Set("Location", "/api/v1/beer/"+testBeerID)
		w.WriteHeader(http.StatusCreated)
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/beer":
		_, _ = w.Write([]byte(`{"content":[` + beer + `],"number":0,"size":25,"totalElements":1}`))
	case r.URL.Path == "/api/v1/beer/"+testBeerID:
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(beer))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	default:
		http.NotFound(w, r)
	}
}

func runCLI(t *testing.T, args ...string) (*recordingServer, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	rec := &recordingServer{}
	srv := httptest.NewServer(http.HandlerFunc(rec.handler))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	err := execute(context.Background(), append([]string{"--base-url", srv.URL}, args...), &out)
	return rec, out.String(), err
}

func TestListCommandSendsOnlyChangedFilters(t *testing.T) {
	rec, out, err := runCLI(t, "list", "--name", "IPA", "--show-inventory", "--page", "2", "--size", "2000")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "GET /api/v1/beer?beerName=IPA&pageNumber=1&pageSize=1000&showInventory=true"
	if len(rec.requests) != 1 || rec.requests[0] != want {
		t.Fatalf("requests = %v, want %q", rec.requests, want)
	}
	if !strings.Contains(out, "Galaxy Cat") {
		t.Fatalf("expected rendered page, got %q", out)
	}
}

func TestListCommandDefaults(t *testing.T) {
	rec, _, err := runCLI(t, "list", "-o", "table")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.requests[0] != "GET /api/v1/beer?pageNumber=0&pageSize=25" {
		t.Fatalf("unexpected request %q", rec.requests[0])
	}
}

func TestCreateCommandPostsThenFollowsLocation(t *testing.T) {
	rec, out, err := runCLI(t, "create", "--name", "Galaxy Cat", "--style", "pale-ale", "--price", "12.99")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(rec.requests) != 2 || rec.requests[0] != "POST /api/v1/beer" || rec.requests[1] != "GET /api/v1/beer/"+testBeerID {
		t.Fatalf("unexpected requests %v", rec.requests)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(rec.bodies[0]), &sent); err != nil {
		t.Fatalf("decode POST body: %v", err)
	}
	if sent["beerName"] != "Galaxy Cat" || sent["beerStyle"] != "PALE_ALE" || sent["price"] != 12.99 {
		t.Fatalf("unexpected POST body %v", sent)
	}
	if !strings.Contains(out, testBeerID) {
		t.Fatalf("expected created record in output, got %q", out)
	}
}

func TestCreateCommandRejectsUnknownStyle(t *testing.T) {
	rec, _, err := runCLI(t, "create", "--name", "x", "--style", "lambic")
	if err == nil {
		t.Fatalf("expected error for unknown style")
	}
	if len(rec.requests) != 0 {
		t.Fatalf("expected no requests, got %v", rec.requests)
	}
}

func TestUpdateCommandMergesFlagsIntoCurrentRecord(t *testing.T) {
	rec, _, err := runCLI(t, "update", testBeerID, "--quantity", "40")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	wantReqs := []string{
		"GET /api/v1/beer/" + testBeerID,
		"PUT /api/v1/beer/" + testBeerID,
		"GET /api/v1/beer/" + testBeerID,
	}
	if strings.Join(rec.requests, ",") != strings.Join(wantReqs, ",") {
		t.Fatalf("requests = %v, want %v", rec.requests, wantReqs)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(rec.bodies[1]), &sent); err != nil {
		t.Fatalf("decode PUT body: %v", err)
	}
	if sent["beerName"] != "Galaxy Cat" || sent["quantityOnHand"] != float64(40) {
		t.Fatalf("unexpected PUT body %v", sent)
	}
}

func TestDeleteCommand(t *testing.T) {
	rec, out, err := runCLI(t, "delete", testBeerID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.requests[0] != "DELETE /api/v1/beer/"+testBeerID {
		t.Fatalf("unexpected request %q", rec.requests[0])
	}
	if !strings.Contains(out, "deleted "+testBeerID) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGetCommandRejectsInvalidID(t *testing.T) {
	if _, _, err := runCLI(t, "get", "not-a-uuid"); err == nil {
		t.Fatalf("expected error for invalid id")
	}
}

func TestGetCommandSurfacesNotFound(t *testing.T) {
	_, _, err := runCLI(t, "get", "00000000-0000-0000-0000-000000000001")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestExecuteFlushesLoggerWhenCommandFails(t *testing.T) {
	prev := closeLogger
	defer func() { closeLogger = prev }()

	var flushed int
	closeLogger = func() error {
		flushed++
		return nil
	}

	_, _, err := runCLI(t, "get", "00000000-0000-0000-0000-000000000001")
	if err == nil {
		t.Fatalf("expected get of unknown beer to fail")
	}
	if flushed != 1 {
		t.Fatalf("expected logger flushed once on error path, got %d", flushed)
	}
}
