package action

import (
	"fmt"
	"strings"
)

// All returns every action definition in a stable order.
func All() []Definition {
	return []Definition{
		GetTokenInfo,
		GetTokenMarketInfoBatch,
		GetTokenList,
		GetJupiterQuote,
		GetJupiterUnsignedSwap,
		TransferUnsigned,
		RugcheckReport,
		SolsnifferReport,
	}
}

// Enabled filters the registry by name. An empty filter enables everything.
// Unknown names are rejected so a typo in configuration fails loudly.
func Enabled(names []string) ([]Definition, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Definition, len(all))
	for _, def := range all {
		byName[def.Name] = def
	}

	out := make([]Definition, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		def, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, def)
	}
	return out, nil
}
