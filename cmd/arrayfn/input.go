package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// readValues returns the raw values for a command: args, or the scalars of
// the YAML sequence in inputFile when it is set.
func readValues(args []string) ([]string, error) {
	if inputFile == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("values given both as arguments and with --file")
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inputFile, err)
	}

	values, err := decodeSequence(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", inputFile, err)
	}

	logger.Debug("Loaded values", zap.String("file", inputFile), zap.Int("count", len(values)))
	return values, nil
}

func decodeSequence(data []byte) ([]string, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(nodes))
	for i, n := range nodes {
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("item %d: expected a scalar, line %d", i, n.Line)
		}
		values = append(values, n.Value)
	}
	return values, nil
}

// parseNumbers strictly parses values as float64, unlike arrayfn.ParseIntegers.
func parseNumbers(values []string) ([]float64, error) {
	numbers := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", v, err)
		}
		numbers = append(numbers, f)
	}
	return numbers, nil
}
