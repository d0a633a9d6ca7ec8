package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const baseURL = "http://localhost:8080"

// Exercises a running server end to end: one rejected empty query, one
// real query through the full retrieval-fusion pipeline.
func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	fmt.Println("1. Empty query is rejected...")
	status, _ := sendAsk("")
	if status != http.StatusBadRequest {
		fmt.Printf("FAILED: expected 400 for empty query, got %d\n", status)
		os.Exit(1)
	}
	fmt.Println("PASSED: empty query rejected")

	fmt.Println("2. Full pipeline query...")
	status, answer := sendAsk("Create a romantic 4-day itinerary for Vietnam")
	if status != http.StatusOK || answer == "" {
		fmt.Printf("FAILED: status %d, answer %q\n", status, answer)
		os.Exit(1)
	}
	fmt.Println("PASSED: pipeline answered")
	fmt.Printf("\nAnswer:\n%s\n", answer)
}

func sendAsk(query string) (int, string) {
	payload, _ := json.Marshal(map[string]string{"query": query})

	resp, err := http.Post(baseURL+"/ask", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return 0, ""
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Answer string `json:"answer"`
	}
	_ = json.Unmarshal(body, &parsed)
	return resp.StatusCode, parsed.Answer
}
