// Package main provides a stdio-to-SSE proxy so hosts that only speak
// stdio MCP can attach to a linkedin-mcp server started with --listen.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	if len(args) != 1 || args[0] == "-h" || args[0] == "--help" {
		return fmt.Errorf("usage: mcp-stdio-proxy <base-url>   (e.g. http://127.0.0.1:8931)")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(args[0]), "/")

	resp, err := http.Get(baseURL + "/sse")
	if err != nil {
		return fmt.Errorf("connect SSE endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected SSE response status: %d", resp.StatusCode)
	}

	return pumpEvents(baseURL, resp.Body)
}

// pumpEvents reads the SSE stream: the "endpoint" event tells us where to
// POST inbound messages, "message" events are forwarded to stdout.
func pumpEvents(baseURL string, stream io.Reader) error {
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)

	currentEvent := ""
	var data []string
	started := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			if currentEvent == "message" && len(data) > 0 {
				fmt.Fprintln(os.Stdout, strings.Join(data, "\n"))
			}
			currentEvent = ""
			data = nil
			continue
		}

		switch {
		case strings.HasPrefix(line, "event:"):
			currentEvent = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if currentEvent == "endpoint" && !started {
				started = true
				go pumpStdin(messageEndpoint(baseURL, payload))
			} else {
				data = append(data, payload)
			}
		}
	}
	return scanner.Err()
}

// pumpStdin forwards each stdin line to the server's message endpoint.
func pumpStdin(endpoint string) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)

	for scanner.Scan() {
		resp, err := http.Post(endpoint, "application/json", strings.NewReader(scanner.Text()))
		if err != nil {
			os.Exit(0)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	os.Exit(0)
}

// messageEndpoint resolves the endpoint path announced over SSE against
// the base URL.
func messageEndpoint(baseURL, path string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "":
		return baseURL
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	case path[0] == '?':
		return baseURL + path
	case path[0] == '/':
		return baseURL + path
	default:
		return baseURL + "/" + path
	}
}
