package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	passcheck "github.com/baditaflorin/go_password_strength"
	adapterlogger "github.com/baditaflorin/go_password_strength/internal/adapters/logger"
	"github.com/baditaflorin/go_password_strength/internal/core/domain"
	"github.com/baditaflorin/go_password_strength/internal/core/similarity"
	"github.com/baditaflorin/go_password_strength/internal/warmup"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 1024 * 1024 // 1MB
)

// Logger instance
var logger l.Logger

// Request represents a password evaluation request
type Request struct {
	Password   string   `json:"password"`
	MinLength  int      `json:"min_length,omitempty"`
	Similarity int      `json:"similarity,omitempty"`
	Ignore     []string `json:"ignore,omitempty"`
}

// RuleResponse represents a single rule outcome
type RuleResponse struct {
	Rule   string `json:"rule"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// SummaryResponse aggregates the rule outcomes. PassPercent is null when no
// rules were enabled.
type SummaryResponse struct {
	Passed      int      `json:"passed"`
	Enabled     int      `json:"enabled"`
	Ignored     int      `json:"ignored"`
	Total       int      `json:"total"`
	PassPercent *float64 `json:"pass_percent"`
	AllPassed   bool     `json:"all_passed"`
}

// Response represents a password evaluation response
type Response struct {
	Results []RuleResponse  `json:"results"`
	Summary SummaryResponse `json:"summary"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting password evaluation HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
	)

	// Pre-build the embedded wordlist and warm the scorer pools
	if *warmUp {
		plog := adapterlogger.FromExisting(logger)
		manager := warmup.NewManager(plog, warmup.DefaultWarmupConfig())
		manager.RegisterScorer(similarity.NewScorer(plog))
		manager.WarmUp(context.Background())
	}

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "PasscheckServer")

	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/evaluate":
		handleEvaluate(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleEvaluate handles password evaluation requests
func handleEvaluate(ctx *fasthttp.RequestCtx) {
	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	// Parse request
	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	// Validate request
	if req.Password == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Password is required")
		return
	}

	checker, err := buildChecker(req)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid configuration: "+err.Error())
		return
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Evaluate the password
	report, err := checker.Evaluate(c, req.Password)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, err.Error())
		return
	}

	// Write response
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, buildResponse(report))
}

// buildChecker constructs a checker from the per-request overrides.
func buildChecker(req Request) (*passcheck.Checker, error) {
	opts := []passcheck.Option{passcheck.WithLogger(logger)}
	if req.MinLength > 0 {
		opts = append(opts, passcheck.WithMinLength(req.MinLength))
	}
	if req.Similarity > 0 {
		opts = append(opts, passcheck.WithSimilarityPercent(req.Similarity))
	}
	for _, name := range req.Ignore {
		id, err := domain.ParseRuleID(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, passcheck.WithIgnore(id))
	}
	return passcheck.New(opts...)
}

// buildResponse converts a report to its JSON form.
func buildResponse(report passcheck.Report) Response {
	response := Response{
		Summary: SummaryResponse{
			Passed:    report.Summary.Passed,
			Enabled:   report.Summary.Enabled,
			Ignored:   report.Summary.Ignored,
			Total:     report.Summary.Total,
			AllPassed: report.Summary.AllPassed(),
		},
	}
	if pct, ok := report.Summary.PassPercent(); ok {
		response.Summary.PassPercent = &pct
	}
	for _, result := range report.Results {
		response.Results = append(response.Results, RuleResponse{
			Rule:   result.Rule.String(),
			Name:   result.Name,
			Status: result.Status.String(),
			Detail: result.Detail,
		})
	}
	return response
}

// Helper functions

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{
		Error: message,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB
		MaxFileSize: 10 * 1024 * 1024, // 10MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
