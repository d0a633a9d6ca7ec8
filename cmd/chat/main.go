package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tripgraph/tripgraph/internal/core"
	"github.com/tripgraph/tripgraph/internal/server"
)

const divider = "============================================================"

// isExit ends the session on a blank line or an exit command in any
// casing.
func isExit(query string) bool {
	switch strings.ToLower(query) {
	case "", "exit", "quit":
		return true
	}
	return false
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	srv := server.NewServer()
	defer srv.Close(context.Background())

	runChat(srv.Pipeline)
}

func runChat(p *core.Pipeline) {
	fmt.Println()
	fmt.Println(divider)
	fmt.Println("HYBRID VIETNAM TRAVEL ASSISTANT")
	fmt.Println(divider)
	fmt.Println()
	fmt.Println("Combining vector search (Pinecone) + knowledge graph (Neo4j)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  - 'Create a romantic 4-day itinerary for Vietnam'")
	fmt.Println("  - 'Best adventure activities in Sapa and Ha Long Bay'")
	fmt.Println("  - 'Family-friendly attractions in Ho Chi Minh City'")
	fmt.Println()
	fmt.Println("Type 'exit' or 'quit' to end the session.")
	fmt.Println(divider)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nEnter your travel question: ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())

		if isExit(query) {
			fmt.Println("\nThank you for using the Hybrid Travel Assistant!")
			break
		}

		fmt.Println("\nProcessing your query...")
		fmt.Println("  [1/4] Searching vector database...")
		matches := p.Retriever.Retrieve(ctx, query, p.TopK)

		fmt.Println("  [2/4] Extracting node IDs...")
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}

		fmt.Println("  [3/4] Fetching knowledge graph relationships...")
		facts, connections := p.Expander.Expand(ctx, ids)

		fmt.Println("  [4/4] Generating AI response...")
		prompt := core.BuildPrompt(query, matches, facts, connections)
		answer := p.Complete(ctx, prompt)

		fmt.Println("\n" + divider)
		fmt.Println("ASSISTANT RESPONSE")
		fmt.Printf("%s\n\n", divider)
		fmt.Println(answer)
		fmt.Println("\n" + divider)

		fmt.Println("\nContext used:")
		fmt.Printf("  - Vector matches: %d\n", len(matches))
		fmt.Printf("  - Graph relationships: %d\n", len(facts))
		fmt.Printf("  - City connections: %d\n", len(connections))
		fmt.Printf("  - Cached embeddings: %d\n", p.CacheSize())
	}
}
