package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRecipe reconstructs a Filter chain from the textual recipe a
// Chain.Recipe() produced (and a Descriptor persists verbatim). Unlike
// the Python original, which deserializes its compression recipe with
// eval() on a repr() string, this is a closed, named-token grammar: a
// comma-separated list drawn from {nonum, casefold, stopwN, portstem}.
// An empty recipe parses to an identity Chain (no filters).
func ParseRecipe(recipe string) (Chain, error) {
	recipe = strings.TrimSpace(recipe)
	if recipe == "" {
		return Chain{}, nil
	}
	names := strings.Split(recipe, ",")
	filters := make([]Filter, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		f, err := parseFilterName(name)
		if err != nil {
			return Chain{}, err
		}
		filters = append(filters, f)
	}
	return Chain{Filters: filters}, nil
}

func parseFilterName(name string) (Filter, error) {
	switch {
	case name == "nonum":
		return NoNumbers{}, nil
	case name == "casefold":
		return CaseFolding{}, nil
	case name == "portstem":
		return PorterStemmer{}, nil
	case strings.HasPrefix(name, "stopw"):
		n, err := strconv.Atoi(strings.TrimPrefix(name, "stopw"))
		if err != nil {
			return nil, fmt.Errorf("analysis: malformed stopword recipe token %q: %w", name, err)
		}
		f, err := NewNoStopWords(n, "")
		if err != nil {
			return nil, fmt.Errorf("analysis: failed to build stopword filter from recipe token %q: %w", name, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("analysis: unrecognized recipe token %q", name)
	}
}

// RecipeNameToFilter maps one of the CLI's --compress-dict flag values
// (spec.md §6's recognized set) to a Filter, used when *building* a
// chain from flags rather than from a persisted recipe string.
func RecipeNameToFilter(name string) (Filter, error) {
	return parseFilterName(name)
}
