package main

import (
	"fmt"
	"os"
)

// readSource reads a source file, refusing files larger than maxBytes.
// A maxBytes of zero disables the check.
func readSource(path string, maxBytes int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("read source: %s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", fmt.Errorf("read source: %s is %d bytes, larger than input.max_bytes (%d)", path, info.Size(), maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

// resolveFormat returns the --format flag when it was given and the
// configured output format otherwise.
func resolveFormat(flag string, opts *globalOptions) string {
	if flag != "" {
		return flag
	}
	return opts.cfg.Output.Format
}
