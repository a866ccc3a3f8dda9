package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sonnetlab/sonnet-search-engine/config"
	"github.com/sonnetlab/sonnet-search-engine/internal/engine"
	"github.com/sonnetlab/sonnet-search-engine/internal/render"
	"github.com/sonnetlab/sonnet-search-engine/services"
)

const banner = `Sonnet Search — query Shakespeare's sonnets.
Type a query, or :help for commands.`

const helpText = `Commands:
  :help                 Show this help
  :quit                 Exit
  :highlight on|off     Toggle ANSI highlighting of matches
  :search-mode AND|OR   Set how multiple terms combine

Anything else is searched as a query; multiple words are
combined under the current search mode.`

// runREPL drives the interactive loop: commands start with ':', everything
// else is evaluated as a query against the corpus.
func runREPL(eng *engine.Engine, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, banner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nBye.")
			return scanner.Err()
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		if strings.HasPrefix(raw, ":") {
			if quit := handleCommand(eng, out, raw); quit {
				return nil
			}
			continue
		}

		result, err := eng.Query(raw, services.QueryOptions{})
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		printer := render.NewPrinter(out, eng.Settings().Highlight)
		if err := printer.PrintResult(result); err != nil {
			return err
		}
	}
}

// handleCommand executes one ':'-prefixed command and reports whether the
// loop should exit.
func handleCommand(eng *engine.Engine, out io.Writer, raw string) bool {
	switch {
	case raw == ":quit":
		fmt.Fprintln(out, "Bye.")
		return true

	case raw == ":help":
		fmt.Fprintln(out, helpText)

	case strings.HasPrefix(raw, ":highlight"):
		parts := strings.Fields(raw)
		if len(parts) == 2 && (strings.ToLower(parts[1]) == "on" || strings.ToLower(parts[1]) == "off") {
			settings := eng.Settings()
			settings.Highlight = strings.ToLower(parts[1]) == "on"
			if err := eng.UpdateSettings(settings); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return false
			}
			state := "OFF"
			if settings.Highlight {
				state = "ON"
			}
			fmt.Fprintln(out, "Highlighting", state)
		} else {
			fmt.Fprintln(out, "Usage: :highlight on|off")
		}

	case strings.HasPrefix(raw, ":search-mode"):
		parts := strings.Fields(raw)
		if len(parts) == 2 && (strings.ToUpper(parts[1]) == config.SearchModeAnd || strings.ToUpper(parts[1]) == config.SearchModeOr) {
			settings := eng.Settings()
			settings.SearchMode = strings.ToUpper(parts[1])
			if err := eng.UpdateSettings(settings); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return false
			}
			fmt.Fprintln(out, "Search mode set to", settings.SearchMode)
		} else {
			fmt.Fprintln(out, "Usage: :search-mode AND|OR")
		}

	default:
		fmt.Fprintln(out, "Unknown command. Type :help for commands.")
	}
	return false
}
