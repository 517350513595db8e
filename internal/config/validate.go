package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/VitiminV/bstdict/internal/datastruct/tree"
)

func checkUint16(v int) error {
	if v < 0 || math.MaxUint16 < v {
		return fmt.Errorf("out of range[%d-%d]", 0, math.MaxUint16)
	}

	return nil
}

func checkLogLevel(v string) error {
	if !slices.Contains(availableLogLevels, strings.ToLower(v)) {
		return fmt.Errorf("invalid level %q, expected one of %v", v, availableLogLevels)
	}

	return nil
}

func checkDuplicatePolicy(v string) error {
	_, err := tree.ParseDuplicatePolicy(v)
	return err
}

func checkOutputFormat(v string) error {
	if !slices.Contains(availableOutputFormats, v) {
		return fmt.Errorf("invalid format %q, expected one of %v", v, availableOutputFormats)
	}

	return nil
}
