package main

import (
	"fmt"
	"os"
)

const envStdioLog = "BADGEMAKER_STDIO_LOG"

// stdioLogPath prefers the flag value and falls back to the environment.
func stdioLogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envStdioLog)
}

func openStdioLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open stdio log: %w", err)
	}
	return f, nil
}
