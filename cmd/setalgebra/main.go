// Command setalgebra evaluates the set algebra queries described in a config file.
//
// Usage:
//
//	setalgebra [config-file]
//
// The config file can also be given with SETALGEBRA_CONFIG_FILE. Every query
// result is printed on stdout as "name: result", in the order of the queries.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-peyrard/setalgebra/config"
	"github.com/a-peyrard/setalgebra/query"
)

const envPrefix = "SETALGEBRA"

var errNoConfigFile = errors.New("no config file, pass one as argument or set " + envPrefix + "_CONFIG_FILE")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "setalgebra: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	file := os.Getenv(envPrefix + "_CONFIG_FILE")
	if len(args) > 0 {
		file = args[0]
	}
	if file == "" {
		return errNoConfigFile
	}

	conf, err := config.Load[AppConfig](config.WithEnvPrefix(envPrefix), config.WithFile(file))
	if err != nil {
		return err
	}

	logger, err := NewLogger(stderr, conf.LogLevel)
	if err != nil {
		return err
	}

	queries, err := conf.BuildQueries()
	if err != nil {
		return err
	}

	catalog := conf.Catalog()
	logger.Info().
		Str("config", file).
		Int("sets", len(catalog)).
		Int("queries", len(queries)).
		Msg("evaluating queries")

	start := time.Now()
	evaluator := query.NewEvaluator(catalog, query.WithLogger(logger), query.WithConcurrency(conf.Concurrency))
	results, err := evaluator.EvaluateAll(ctx, queries)
	if err != nil {
		return err
	}
	logger.Info().Dur("took", time.Since(start)).Msg("queries evaluated")

	for _, result := range results {
		if _, err := fmt.Fprintf(stdout, "%s: %s\n", result.Query.Name, result); err != nil {
			return err
		}
	}
	return nil
}
