// Package envfile reads GitHub CLI settings from .env files.
//
// Only variables gh understands (GH_* and GITHUB_*) are collected, and only
// when the process environment does not already set them. The result is
// handed to the gh subprocess; the process environment is never modified.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// prefixes select the variables passed on to gh.
var prefixes = []string{"GH_", "GITHUB_"}

// Read collects KEY=VALUE pairs from the given files. The first file to
// define a key wins; keys already present in the environment are skipped.
// Missing files are ignored. Returns an error only for read failures.
func Read(paths ...string) ([]string, error) {
	seen := make(map[string]bool)
	var env []string
	for _, path := range paths {
		pairs, err := readFile(path)
		if err != nil {
			return nil, err
		}
		for _, pair := range pairs {
			if seen[pair[0]] {
				continue
			}
			seen[pair[0]] = true
			if _, set := os.LookupEnv(pair[0]); set {
				continue
			}
			env = append(env, pair[0]+"="+pair[1])
		}
	}
	return env, nil
}

// readFile returns the gh variables defined in one file, in file order.
func readFile(path string) ([][2]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var pairs [][2]string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok || !forGh(key) {
			continue
		}
		pairs = append(pairs, [2]string{key, value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return pairs, nil
}

func forGh(key string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// parseEnvLine extracts KEY=VALUE from a line.
// Handles an export prefix and single or double quotes around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}
