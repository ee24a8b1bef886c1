package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/rpntools"
	"github.com/erraggy/rpntools/cmd/rpntools/commands"
)

// commandNames lists the commands offered as suggestions for typos.
var commandNames = []string{"convert", "symbols", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("rpntools v%s\n", rpntools.Version())
		fmt.Println(rpntools.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			// Per-expression failures were already reported.
			if !errors.Is(err, commands.ErrConversionFailed) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	case "symbols":
		if err := commands.HandleSymbols(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when none
// is within edit distance 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`rpntools - Infix to Reverse Polish Notation Tools

Usage:
  rpntools <command> [options]

Commands:
  convert     Convert infix expressions to postfix (RPN)
  symbols     Show the active symbol table
  mcp         Serve the converter as MCP tools on stdio
  version     Show version information
  help        Show this help message

Examples:
  rpntools convert '( A | B ) ^ C'
  rpntools convert -s symbols.yaml 'not ( a and b )'
  rpntools convert -f expressions.txt --format json
  rpntools symbols --format toml

Run 'rpntools <command> --help' for more information on a command.`)
}
