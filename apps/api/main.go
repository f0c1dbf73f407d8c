package main

import (
	"os"
	"strings"
)

// API_DI selects how dependencies are wired: dig (default) or manual.
func main() {
	switch strings.ToLower(os.Getenv("API_DI")) {
	case "manual":
		startManual()
	default:
		startWithDig()
	}
}
