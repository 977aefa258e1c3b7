package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-peyrard/setalgebra/query"
	"github.com/a-peyrard/setalgebra/set"
)

type (
	// AppConfig is the configuration of the setalgebra command, env vars are prefixed with SETALGEBRA.
	AppConfig struct {
		LogLevel    string              `mapstructure:"log_level"`
		Concurrency int                 `mapstructure:"concurrency"`
		Sets        map[string][]string `mapstructure:"sets"`
		Queries     []QueryConfig       `mapstructure:"queries"`
	}

	QueryConfig struct {
		Name     string   `mapstructure:"name"`
		Op       string   `mapstructure:"op"`
		Operands []string `mapstructure:"operands"`
	}
)

func (c *AppConfig) ApplyDefault() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Catalog builds the named sets. Set names are matched case-insensitively,
// as the config keys are lowercased when read.
func (c *AppConfig) Catalog() query.Catalog {
	catalog := make(query.Catalog, len(c.Sets))
	for name, values := range c.Sets {
		catalog[strings.ToLower(name)] = set.NewFromSlice(values)
	}
	return catalog
}

// BuildQueries parses the configured queries, unnamed ones are named after their position.
func (c *AppConfig) BuildQueries() ([]query.Query, error) {
	queries := make([]query.Query, 0, len(c.Queries))
	for i, qc := range c.Queries {
		name := qc.Name
		if name == "" {
			name = "#" + strconv.Itoa(i+1)
		}
		op, err := query.ParseOp(qc.Op)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", name, err)
		}
		operands := make([]string, len(qc.Operands))
		for j, operand := range qc.Operands {
			operands[j] = strings.ToLower(operand)
		}
		queries = append(queries, query.Query{Name: name, Op: op, Operands: operands})
	}
	return queries, nil
}
