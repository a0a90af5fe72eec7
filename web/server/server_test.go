package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/scene"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := serve(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	rec := serve(t, "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) != len(scene.ListBuiltinScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListBuiltinScenes()), len(scenes))
	}
	for _, info := range scenes {
		if info.ID == "" || info.DisplayName == "" {
			t.Errorf("Expected an ID and display name, got %+v", info)
		}
	}
}

func TestHandleRoot(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"root lists scenes", "/", http.StatusOK},
		{"unknown path", "/index.html", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.target)
			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
		})
	}

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(serve(t, "/").Body).Decode(&scenes); err != nil || len(scenes) == 0 {
		t.Errorf("Expected the scene list at the root, got %v (err %v)", scenes, err)
	}
}

func TestHandleSceneConfig(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"default scene", "/api/scene-config", http.StatusOK},
		{"general scene", "/api/scene-config?scene=general", http.StatusOK},
		{"unknown scene", "/api/scene-config?scene=nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.target)
			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestHandleImage(t *testing.T) {
	rec := serve(t, "/api/image?scene=two-spheres&width=20&height=10&threads=2&samples=4&adaptive=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("Expected 20x10, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleImage_LogsSkippedGrid(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	// The basic scene draws a grid every 100 pixels, which does not divide 30x20
	rec := serve(t, "/api/image?scene=basic&width=30&height=20&threads=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(buf.String(), "Skipping grid for basic") {
		t.Errorf("Expected the skipped grid to be logged, got %q", buf.String())
	}
}

func TestHandleImage_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"width too large", "/api/image?width=5000"},
		{"width not a number", "/api/image?width=abc"},
		{"unknown thread mode", "/api/image?threads=-3"},
		{"bad adaptive flag", "/api/image?adaptive=maybe"},
		{"unknown scene", "/api/image?scene=nope&width=4&height=4"},
		{"non-square samples", "/api/image?width=4&height=4&samples=8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleRender_StreamsProgressAndResult(t *testing.T) {
	rec := serve(t, "/api/render?scene=mirrors&width=10&height=10&threads=0")
	body := rec.Body.String()

	if !strings.Contains(body, "event: progress\ndata: 0.0%") {
		t.Errorf("Expected an initial progress event, got %q", body)
	}

	idx := strings.Index(body, "event: complete\ndata: ")
	if idx < 0 {
		t.Fatalf("Expected a complete event, got %q", body)
	}
	payload := strings.TrimSpace(body[idx+len("event: complete\ndata: "):])

	var result RenderResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("Invalid result JSON: %v", err)
	}
	if result.Stats.TotalPixels != 100 {
		t.Errorf("Expected 100 pixels, got %d", result.Stats.TotalPixels)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64 image: %v", err)
	}
	if _, err := png.Decode(strings.NewReader(string(data))); err != nil {
		t.Errorf("Invalid PNG: %v", err)
	}
}

func TestHandleRender_InvalidRequest(t *testing.T) {
	rec := serve(t, "/api/render?height=0")
	if !strings.Contains(rec.Body.String(), "event: error") {
		t.Errorf("Expected an error event, got %q", rec.Body.String())
	}
}
