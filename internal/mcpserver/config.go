package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxDepth limits parenthesis nesting. Zero means unlimited.
	MaxDepth int
	// MaxTokens limits the length of one expression. Zero means unlimited.
	MaxTokens int
	// SymbolsFile is the symbol table used when a call gives no inline table.
	SymbolsFile string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RPNTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:    envInt("RPNTOOLS_MAX_DEPTH", 256),
		MaxTokens:   envInt("RPNTOOLS_MAX_TOKENS", 10000),
		SymbolsFile: envFile("RPNTOOLS_SYMBOLS"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envFile(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	info, err := os.Stat(v)
	if err != nil || info.IsDir() {
		slog.Warn("symbol table file not found, using default table", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return v
}
