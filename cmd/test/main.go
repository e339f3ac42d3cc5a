// Command test runs smoke checks against a running site backend.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cecoladevelopment/site-backend/internal/models"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type SmokeClient struct {
	baseURL string
	client  *http.Client
}

func NewSmokeClient(baseURL string) *SmokeClient {
	return &SmokeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the site backend")
	testType := flag.String("test", "all", "Test type: all, health, cors, inquiry, contact-validation, contact-send")
	query := flag.String("query", "We have too many software subscriptions", "Question sent to the inquiry endpoint")
	email := flag.String("email", "", "Submitter address for contact-send (delivers a real message)")
	flag.Parse()

	client := NewSmokeClient(*baseURL)

	printHeader("Site Backend - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, client.baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAll(*query)
	case "health":
		exitOn(client.testHealth())
	case "cors":
		exitOn(client.testPreflight())
	case "inquiry":
		exitOn(client.testInquiry(*query))
	case "contact-validation":
		exitOn(client.testContactValidation())
	case "contact-send":
		if *email == "" {
			printError("contact-send delivers a real message. Use -email to set the reply-to address")
			os.Exit(1)
		}
		exitOn(client.testContactSend(*email))
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, cors, inquiry, contact-validation, contact-send")
		os.Exit(1)
	}
}

func exitOn(ok bool) {
	if !ok {
		os.Exit(1)
	}
}

// runAll runs every check that has no side effects.
func (sc *SmokeClient) runAll(query string) {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health", sc.testHealth},
		{"CORS preflight", sc.testPreflight},
		{"Method not allowed", sc.testMethodNotAllowed},
		{"Inquiry", func() bool { return sc.testInquiry(query) }},
		{"Inquiry without query", sc.testInquiryValidation},
		{"Contact validation", sc.testContactValidation},
	}

	passed, failed := 0, 0
	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (sc *SmokeClient) testHealth() bool {
	printTestHeader("Health endpoint")

	status, body, err := sc.do(http.MethodGet, "/health", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var health map[string]string
	if err := json.Unmarshal(body, &health); err != nil || health["status"] != "healthy" {
		printError(fmt.Sprintf("Unexpected health body: %s", string(body)))
		return false
	}

	printSuccess(fmt.Sprintf("%s %s is healthy", health["service"], health["version"]))
	return true
}

func (sc *SmokeClient) testPreflight() bool {
	printTestHeader("CORS preflight")

	ok := true
	for _, path := range []string{"/api/ai-helper", "/api/contact"} {
		req, _ := http.NewRequest(http.MethodOptions, sc.baseURL+path, nil)
		resp, err := sc.client.Do(req)
		if err != nil {
			printError(fmt.Sprintf("OPTIONS %s failed: %v", path, err))
			ok = false
			continue
		}
		resp.Body.Close()

		origin := resp.Header.Get("Access-Control-Allow-Origin")
		if resp.StatusCode != http.StatusOK || origin != "*" {
			printError(fmt.Sprintf("OPTIONS %s: status %d, allow-origin %q", path, resp.StatusCode, origin))
			ok = false
			continue
		}
		printSuccess(fmt.Sprintf("OPTIONS %s allows %s", path, resp.Header.Get("Access-Control-Allow-Methods")))
	}
	return ok
}

func (sc *SmokeClient) testMethodNotAllowed() bool {
	printTestHeader("Non-POST requests are rejected")

	status, body, err := sc.do(http.MethodGet, "/api/ai-helper", nil)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusMethodNotAllowed {
		printError(fmt.Sprintf("Expected status 405, got %d: %s", status, string(body)))
		return false
	}

	printSuccess("GET /api/ai-helper returned 405")
	return true
}

func (sc *SmokeClient) testInquiry(query string) bool {
	printTestHeader("Inquiry")
	fmt.Printf("%sQuery:%s %s\n\n", colorCyan, colorReset, query)

	status, body, err := sc.do(http.MethodPost, "/api/ai-helper", models.InquiryRequest{Query: query})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		printJSON(body)
		return false
	}

	var resp models.InquiryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if !resp.Success || resp.Response == "" || resp.Section == "" {
		printError("Response is missing required fields")
		printJSON(body)
		return false
	}

	mode := "generated"
	if resp.Fallback {
		mode = "fallback"
	}
	printSuccess(fmt.Sprintf("Answered (%s), section %q", mode, resp.Section))

	fmt.Printf("\n%sResponse:%s\n", colorGreen, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(resp.Response)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("CTA: %s -> %s | %s -> %s\n",
		resp.CTA.Primary.Text, resp.CTA.Primary.Link,
		resp.CTA.Secondary.Text, resp.CTA.Secondary.Link)
	return true
}

func (sc *SmokeClient) testInquiryValidation() bool {
	printTestHeader("Inquiry without query")

	status, body, err := sc.do(http.MethodPost, "/api/ai-helper", models.InquiryRequest{Query: "   "})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusBadRequest {
		printError(fmt.Sprintf("Expected status 400, got %d", status))
		printJSON(body)
		return false
	}

	printSuccess("Blank query rejected with 400")
	return true
}

func (sc *SmokeClient) testContactValidation() bool {
	printTestHeader("Contact validation")

	status, body, err := sc.do(http.MethodPost, "/api/contact", models.ContactSubmission{
		Name:    "Smoke Test",
		Company: "Smoke Test Co",
		Problem: "Checking that a missing email is rejected",
	})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusBadRequest {
		printError(fmt.Sprintf("Expected status 400, got %d", status))
		printJSON(body)
		return false
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if len(resp.Fields) != 1 || resp.Fields[0] != "email" {
		printError(fmt.Sprintf("Expected missing field [email], got %v", resp.Fields))
		return false
	}

	printSuccess("Missing email rejected with 400")
	return true
}

func (sc *SmokeClient) testContactSend(email string) bool {
	printTestHeader("Contact delivery")

	status, body, err := sc.do(http.MethodPost, "/api/contact", models.ContactSubmission{
		Name:    "Smoke Test",
		Company: "Smoke Test Co",
		Email:   email,
		Problem: fmt.Sprintf("Smoke test sent at %s", time.Now().Format(time.RFC3339)),
	})
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		printJSON(body)
		return false
	}

	var resp models.ContactResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.MessageID == "" {
		printError("Response carries no message id")
		printJSON(body)
		return false
	}

	printSuccess(fmt.Sprintf("Delivered, message id %s", resp.MessageID))
	return true
}

func (sc *SmokeClient) do(method, path string, payload interface{}) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(data)
	}

	url := sc.baseURL + path
	fmt.Printf("%s %s\n", method, url)

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := sc.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
		return
	}
	fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, string(data))
}
