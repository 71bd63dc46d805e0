// Package typed_flags holds go-flags value types restricted to a fixed set
// of choices, with shell completion.
package typed_flags

import (
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
)

func completeChoices[T ~string](choices []T, match string) (completions []flags.Completion) {
	for _, v := range choices {
		val := string(v)
		if match == "" || strings.HasPrefix(val, strings.ToLower(match)) {
			completions = append(completions, flags.Completion{
				Item:        val,
				Description: "",
			})
		}
	}
	return
}

func parseChoice[T ~string](name string, choices []T, value string) (T, error) {
	for _, v := range choices {
		if string(v) == value {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid %s: %s (valid: %v)", name, value, choices)
}
