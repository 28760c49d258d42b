// Smoke-test client for a running analyzer server. Hits the health and
// analyze endpoints and prints what the UI would render.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type SmokeClient struct {
	baseURL string
	client  *http.Client
}

func NewSmokeClient(baseURL string) *SmokeClient {
	return &SmokeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the analyzer server")
	testType := flag.String("test", "all", "Test type: all, health, analyze")
	username := flag.String("user", "nasa", "Username to analyze")
	flag.Parse()

	client := NewSmokeClient(*baseURL)

	printHeader("Instagram Profile Analyzer - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	ok := true
	switch *testType {
	case "all":
		ok = client.testHealth() && client.testAnalyze(*username)
	case "health":
		ok = client.testHealth()
	case "analyze":
		ok = client.testAnalyze(*username)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, analyze")
		os.Exit(1)
	}

	if !ok {
		os.Exit(1)
	}
}

func (sc *SmokeClient) testHealth() bool {
	printHeader("Health Check")

	resp, err := sc.client.Get(sc.baseURL + "/health")
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Unexpected status: %d", resp.StatusCode))
		return false
	}

	printSuccess("Server is healthy")
	return true
}

func (sc *SmokeClient) testAnalyze(username string) bool {
	printHeader(fmt.Sprintf("Analyze @%s", username))

	payload, _ := json.Marshal(map[string]string{"username": username})
	resp, err := sc.client.Post(sc.baseURL+"/api/analyze", "application/json", bytes.NewReader(payload))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		printError(fmt.Sprintf("Failed to read response: %v", err))
		return false
	}

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Status %d: %s", resp.StatusCode, string(body)))
		return false
	}

	var result struct {
		AnalysisID string `json:"analysis_id"`
		Profile    struct {
			Username  string `json:"username"`
			Followers int    `json:"followers"`
		} `json:"profile"`
		Analysis struct {
			Summary  string            `json:"summary"`
			Insights map[string]string `json:"insights"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		printError(fmt.Sprintf("Failed to decode response: %v", err))
		return false
	}

	printSuccess(fmt.Sprintf("Analysis %s completed", result.AnalysisID))
	fmt.Printf("%sProfile:%s @%s (%d followers)\n", colorYellow, colorReset, result.Profile.Username, result.Profile.Followers)
	fmt.Printf("%sSummary:%s %s\n", colorYellow, colorReset, result.Analysis.Summary)
	for key, value := range result.Analysis.Insights {
		fmt.Printf("  %s%s:%s %s\n", colorCyan, key, colorReset, truncate(value, 120))
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func printHeader(title string) {
	fmt.Printf("%s=== %s ===%s\n", colorCyan, title, colorReset)
}

func printSuccess(msg string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, msg, colorReset)
}

func printError(msg string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, msg, colorReset)
}
