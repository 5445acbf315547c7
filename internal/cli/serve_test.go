package cli

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/pipeline"
)

// serveToken decodes to two rooms at (0,0) and (49,49) with scatter headroom.
const serveToken = "nft1000zz7823"

func testServer() *server {
	return &server{
		runner: pipeline.NewRunner(nil, nil, log.New(io.Discard)),
		logger: log.New(io.Discard),
		seed:   42,
	}
}

func TestServeHealth(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestServeMintReturnsDecodableToken(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("POST", "/tokens", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, err := dungeon.Decode(out.Token); err != nil {
		t.Errorf("minted token %q does not decode: %v", out.Token, err)
	}
}

func TestServeDungeonJSON(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/dungeons/"+serveToken, nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var out struct {
		Token     string `json:"token"`
		RoomCount int    `json:"room_count"`
		Type      string `json:"type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Token != serveToken || out.RoomCount != 2 {
		t.Errorf("record = %+v", out)
	}
}

func TestServeDungeonTextFormat(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/dungeons/"+serveToken+"?format=txt", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "O") {
		t.Error("text map has no excavated cells")
	}
}

func TestServeErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"bad prefix", "/dungeons/abc100a1b7823", 400, "INVALID_PREFIX"},
		{"short token", "/dungeons/nft1", 400, "TOKEN_TOO_SHORT"},
		{"bad format", "/dungeons/" + serveToken + "?format=gif", 400, "INVALID_FORMAT"},
		{"bad seed", "/dungeons/" + serveToken + "?seed=banana", 400, "INVALID_SEED"},
		{"history without store", "/history", 404, "NOT_FOUND"},
	}

	srv := testServer()
	router := srv.routes()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var out errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid JSON error body: %v", err)
			}
			if out.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", out.Code, tt.wantCode)
			}
		})
	}
}

func TestServeNoScatterQuery(t *testing.T) {
	srv := testServer()

	get := func(target string) []byte {
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
		if rec.Code != 200 {
			t.Fatalf("status = %d for %s", rec.Code, target)
		}
		return rec.Body.Bytes()
	}

	var withScatter, without struct {
		Excavated []dungeon.Point `json:"excavated"`
	}
	if err := json.Unmarshal(get("/dungeons/"+serveToken), &withScatter); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(get("/dungeons/"+serveToken+"?no_scatter=true"), &without); err != nil {
		t.Fatal(err)
	}

	if len(withScatter.Excavated) <= len(without.Excavated) {
		t.Errorf("scatter added no cells: %d vs %d",
			len(withScatter.Excavated), len(without.Excavated))
	}
}
