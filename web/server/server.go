package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/core"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/imagewriter"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/renderer"
	"github.com/MichalSwisa/ISE5784-6831-2813/pkg/scene"
)

// Request limits
const (
	minImageSize = 1
	maxImageSize = 2000
	maxSamples   = 1024
	maxLevel     = 10
	maxThreads   = 256
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Built-in scene ID
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	Samples  int    `json:"samples"`  // Rays per pixel, a perfect square
	Adaptive bool   `json:"adaptive"` // Adaptive anti-aliasing
	MaxLevel int    `json:"maxLevel"` // Adaptive subdivision depth
	Threads  int    `json:"threads"`  // Thread mode, see renderer.Threads*
}

// RenderResult is the final event of a streamed render
type RenderResult struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int64   `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MaxSamples     int     `json:"maxSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
	Workers        int     `json:"workers"`
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// The root lists the available scenes
	mux.HandleFunc("/{$}", s.handleScenes)

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListBuiltinScenes())
}

// handleSceneConfig returns the recommended settings of a scene with the request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "basic" // Default scene
	}

	sceneObj, err := scene.NewBuiltinScene(sceneName)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	config := sceneObj.Sampling
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":    config.Width,
			"height":   config.Height,
			"samples":  config.SamplesPerPixel,
			"adaptive": config.AdaptiveSampling,
			"maxLevel": renderer.DefaultSamplingConfig().AdaptiveMaxLevel,
			"threads":  renderer.ThreadsAuto,
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"samples":  map[string]int{"min": 1, "max": maxSamples},
			"maxLevel": map[string]int{"min": 1, "max": maxLevel},
			"threads":  map[string]int{"min": renderer.ThreadsAuto, "max": maxThreads},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// handleRender streams progress lines via SSE and finishes with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Use request context to detect client disconnection
	startTime := time.Now()
	logger := &sseLogger{server: s, w: w}
	img, stats, err := s.render(r, req, logger)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Render error: %v", err))
		return
	}

	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(RenderResult{
		ImageData: imageData,
		Stats:     toStats(stats),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// handleImage renders synchronously and answers with the PNG itself
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	img, stats, err := s.render(r, req, logDiscard{})
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Duration", stats.Duration.String())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// render builds the requested scene and renders it into an in-memory image
func (s *Server) render(r *http.Request, req *RenderRequest, logger core.Logger) (*imagewriter.ImageWriter, renderer.RenderStats, error) {
	sceneObj, err := scene.NewBuiltinScene(req.Scene)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	sampling := sceneObj.Sampling
	sampling.Width, sampling.Height = req.Width, req.Height
	if req.Samples > 0 {
		sampling.SamplesPerPixel = req.Samples
	}

	cfg := renderer.CameraConfigFromView(sceneObj.View, sampling)
	cfg.Threads = req.Threads
	cfg.ProgressInterval = 10
	camera, err := renderer.NewCamera(cfg)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	rt := renderer.NewRayTracer(sceneObj)
	samplingConfig := rt.GetSamplingConfig()
	samplingConfig.AdaptiveSampling = req.Adaptive || sampling.AdaptiveSampling
	if req.MaxLevel > 0 {
		samplingConfig.AdaptiveMaxLevel = req.MaxLevel
	}
	rt.SetSamplingConfig(samplingConfig)

	img, err := imagewriter.NewImageWriter(req.Scene, req.Width, req.Height)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && sampling.SamplesPerPixel > 64 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	stats, err := camera.Render(r.Context(), rt, img, logger)
	if err != nil {
		return nil, stats, err
	}
	if sceneObj.Grid.Interval > 0 {
		if err := camera.PrintGrid(img, sceneObj.Grid.Interval, sceneObj.Grid.Color); err != nil {
			log.Printf("Skipping grid for %s: %v", req.Scene, err)
		}
	}
	return img, stats, nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "basic"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	// Parse and validate all parameters using helper functions
	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 400, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 0, 0, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxLevel, err = parseIntParam(query, "maxLevel", 0, 0, maxLevel); err != nil {
		return nil, err
	}
	if req.Threads, err = parseIntParam(query, "threads", renderer.ThreadsAuto, renderer.ThreadsAuto, maxThreads); err != nil {
		return nil, err
	}
	if value := query.Get("adaptive"); value != "" {
		if req.Adaptive, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("invalid adaptive: %s", value)
		}
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts the rendered image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img *imagewriter.ImageWriter) (string, error) {
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}

// sseLogger forwards render log lines to the client as "progress" events
type sseLogger struct {
	mu     sync.Mutex
	server *Server
	w      http.ResponseWriter
}

func (l *sseLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.server.sendSSEEvent(l.w, "progress", strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// logDiscard drops every line
type logDiscard struct{}

func (logDiscard) Printf(string, ...interface{}) {}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		TotalSamples:   int64(stats.TotalSamples),
		AverageSamples: stats.AverageSamples,
		MaxSamples:     stats.MaxSamples,
		MinSamples:     stats.MinSamples,
		MaxSamplesUsed: stats.MaxSamplesUsed,
		Workers:        stats.Workers,
	}
}

// statusFor maps render errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene), errors.Is(err, renderer.ErrInvalidCameraConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
