// Command smoke drives a full visitor flow against a running server:
// session create, assistant query, map render, zoom, teardown. It reports
// per-step latency and exits non-zero on the first failure, so it doubles
// as a deploy check.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type stepResult struct {
	Name         string        `json:"name"`
	ResponseTime time.Duration `json:"response_time"`
	DataSize     int           `json:"data_size"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
}

type smokeRun struct {
	baseURL string
	client  *http.Client
	results []stepResult
	failed  bool
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "server base URL")
	redisAddr := flag.String("redis", "", "optional Redis address to ping before the run")
	flag.Parse()

	fmt.Println("🧪 Wayfinder smoke test")
	fmt.Println("=======================")

	if *redisAddr != "" {
		if err := pingRedis(*redisAddr); err != nil {
			log.Fatalf("❌ Redis ping failed: %v", err)
		}
		fmt.Println("✅ Redis connection: OK")
	}

	run := &smokeRun{
		baseURL: *baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}

	run.step("health", http.MethodGet, "/health", nil, nil)
	run.step("venue", http.MethodGet, "/api/v1/venue", nil, nil)
	run.step("locations", http.MethodGet, "/api/v1/venue/locations", nil, nil)
	run.step("restrooms only", http.MethodGet, "/api/v1/venue/locations?type=restroom", nil, nil)

	// Visitor session lifecycle.
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	run.step("create session", http.MethodPost, "/api/v1/sessions", nil, &created)
	sessionID := created.Data.ID

	if sessionID != "" {
		run.step("assistant query", http.MethodPost, "/api/v1/assistant/query",
			map[string]string{"query": "where is the nearest bathroom?", "session_id": sessionID}, nil)
		run.step("map render", http.MethodGet,
			"/api/v1/map.svg?session_id="+sessionID+"&highlight=restroom_west", nil, nil)
		run.step("zoom in", http.MethodPost, "/api/v1/sessions/"+sessionID+"/zoom",
			map[string]string{"direction": "in"}, nil)
		run.step("delete session", http.MethodDelete, "/api/v1/sessions/"+sessionID, nil, nil)
	}

	// Anonymous queries work without a session.
	run.step("anonymous query", http.MethodPost, "/api/v1/assistant/query",
		map[string]string{"query": "what are the opening hours?"}, nil)

	run.report()
	if run.failed {
		os.Exit(1)
	}
	fmt.Println("\n🎉 Smoke test passed")
}

func pingRedis(addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func (r *smokeRun) step(name, method, path string, payload map[string]string, out interface{}) {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}

	start := time.Now()
	req, err := http.NewRequest(method, r.baseURL+path, body)
	if err != nil {
		r.record(stepResult{Name: name, Error: err.Error()})
		return
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.record(stepResult{Name: name, ResponseTime: time.Since(start), Error: err.Error()})
		return
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	result := stepResult{
		Name:         name,
		ResponseTime: time.Since(start),
		DataSize:     len(data),
		Success:      resp.StatusCode >= 200 && resp.StatusCode < 400,
	}
	if !result.Success {
		result.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, truncate(data, 120))
	}
	if result.Success && out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			result.Success = false
			result.Error = "decode response: " + err.Error()
		}
	}

	r.record(result)
}

func (r *smokeRun) record(result stepResult) {
	icon := "✅"
	if !result.Success {
		icon = "❌"
		r.failed = true
	}
	fmt.Printf("   %s %-18s %v (%d bytes)%s\n",
		icon, result.Name, result.ResponseTime, result.DataSize, suffix(result.Error))
	r.results = append(r.results, result)
}

func (r *smokeRun) report() {
	fmt.Println("\n📊 SUMMARY")

	succeeded := 0
	var total time.Duration
	for _, res := range r.results {
		if res.Success {
			succeeded++
		}
		total += res.ResponseTime
	}

	fmt.Printf("Steps: %d, succeeded: %d, total time: %v\n", len(r.results), succeeded, total)
}

func suffix(errMsg string) string {
	if errMsg == "" {
		return ""
	}
	return " (" + errMsg + ")"
}

func truncate(data []byte, n int) string {
	if len(data) > n {
		return string(data[:n]) + "..."
	}
	return string(data)
}
