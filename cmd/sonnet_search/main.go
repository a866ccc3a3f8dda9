package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/sonnetlab/sonnet-search-engine/api"
	"github.com/sonnetlab/sonnet-search-engine/config"
	"github.com/sonnetlab/sonnet-search-engine/internal/corpus"
	"github.com/sonnetlab/sonnet-search-engine/internal/engine"
	"github.com/sonnetlab/sonnet-search-engine/internal/render"
	"github.com/sonnetlab/sonnet-search-engine/services"
	"github.com/sonnetlab/sonnet-search-engine/store"
)

const (
	cacheFileName  = "sonnets.json"
	configFileName = "config.json"
)

func main() {
	app := &cli.App{
		Name:  "sonnet_search",
		Usage: "Search Shakespeare's sonnets from the terminal or over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory holding the sonnet cache and config file",
				Value:   "./sonnet_data",
			},
			&cli.StringFlag{
				Name:  "poetrydb-url",
				Usage: "PoetryDB endpoint to fetch the sonnets from",
				Value: corpus.DefaultPoetryDBURL,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "Port to run the server on",
						Value:   "8080",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run a single query and print the results",
				ArgsUsage: "<term> [term...]",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Search mode: AND or OR (default: configured mode)",
					},
					&cli.BoolFlag{
						Name:  "no-highlight",
						Usage: "Disable ANSI highlighting of matches",
					},
				},
			},
			{
				Name:   "repl",
				Usage:  "Start the interactive query loop",
				Action: replCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads settings and the corpus and builds the engine. It is shared by
// every subcommand.
func setup(c *cli.Context) (*engine.Engine, error) {
	dataDir := c.String("data-dir")
	configPath := filepath.Join(dataDir, configFileName)

	settings, err := config.Load(configPath)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		log.Printf("No %s found. Using default configuration.", configFileName)
	default:
		log.Printf("Invalid %s. Using default configuration. (%v)", configFileName, err)
	}

	loader := corpus.NewLoader(filepath.Join(dataDir, cacheFileName))
	loader.URL = c.String("poetrydb-url")

	startTime := time.Now()
	sonnets, err := loader.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("Loading sonnets took: %.3f [ms]", float64(time.Since(startTime).Microseconds())/1000.0)
	log.Printf("Loaded %d sonnets.", len(sonnets))

	return engine.NewEngine(store.NewCorpusStore(sonnets), settings, configPath), nil
}

func serveCommand(c *cli.Context) error {
	eng, err := setup(c)
	if err != nil {
		return err
	}

	router := gin.Default()
	api.SetupRoutes(router, eng)

	port := c.String("port")
	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("Usage: sonnet_search search <term> [term...]", 1)
	}

	eng, err := setup(c)
	if err != nil {
		return err
	}

	query := strings.Join(c.Args().Slice(), " ")

	result, err := eng.Query(query, services.QueryOptions{Mode: c.String("mode")})
	if err != nil {
		return err
	}

	highlightMatches := eng.Settings().Highlight && !c.Bool("no-highlight")
	return render.NewPrinter(os.Stdout, highlightMatches).PrintResult(result)
}

func replCommand(c *cli.Context) error {
	eng, err := setup(c)
	if err != nil {
		return err
	}
	return runREPL(eng, os.Stdin, os.Stdout)
}
