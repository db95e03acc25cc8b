package loadorder

import (
	"sort"

	"github.com/arthur-debert/modlauncher/pkg/logging"
	"github.com/arthur-debert/modlauncher/pkg/types"
)

// Result is a resolved load order.
type Result struct {
	Order []string

	// FellBack is set when the dependency graph had no valid order and
	// Order is the ordinal sort of the candidates.
	FellBack bool

	Warnings types.Warnings
}

// Resolve orders candidates so every dependency that is itself a candidate
// precedes its dependent. Duplicate candidates are collapsed to their first
// occurrence.
func Resolve(candidates []string, deps map[string][]string) Result {
	logger := logging.GetLogger("loadorder")

	names := dedupe(candidates)
	if len(names) == 0 {
		return Result{Order: []string{}}
	}

	inSet := make(map[string]bool, len(names))
	for _, n := range names {
		inSet[n] = true
	}

	// dependents[d] lists the candidates that must wait for d
	inDegree := make(map[string]int, len(names))
	dependents := make(map[string][]string, len(names))
	for _, mod := range names {
		inDegree[mod] = 0
	}
	for _, mod := range names {
		for _, dep := range dedupe(deps[mod]) {
			if !inSet[dep] {
				continue
			}
			inDegree[mod]++
			dependents[dep] = append(dependents[dep], mod)
		}
	}

	queue := make([]string, 0, len(names))
	for _, mod := range names {
		if inDegree[mod] == 0 {
			queue = append(queue, mod)
		}
	}

	order := make([]string, 0, len(names))
	for len(queue) > 0 {
		mod := queue[0]
		queue = queue[1:]
		order = append(order, mod)

		for _, other := range dependents[mod] {
			inDegree[other]--
			if inDegree[other] == 0 {
				queue = append(queue, other)
			}
		}
	}

	if len(order) != len(names) {
		fallback := append([]string(nil), names...)
		sort.Strings(fallback)

		var warnings types.Warnings
		warnings.Add(types.Warning{
			Code:    types.WarnLoadOrderCycle,
			Message: "dependency cycle or missing dependency detected, using alphanumeric order",
		})
		logger.Debug().
			Strs("candidates", names).
			Strs("unresolved", unresolved(names, order)).
			Msg("Falling back to ordinal order")

		return Result{Order: fallback, FellBack: true, Warnings: warnings}
	}

	logger.Debug().Strs("order", order).Msg("Resolved load order")
	return Result{Order: order}
}

// ResolveLoadOrder returns only the order from Resolve.
func ResolveLoadOrder(candidates []string, deps map[string][]string) []string {
	return Resolve(candidates, deps).Order
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func unresolved(names, order []string) []string {
	placed := make(map[string]bool, len(order))
	for _, n := range order {
		placed[n] = true
	}
	var out []string
	for _, n := range names {
		if !placed[n] {
			out = append(out, n)
		}
	}
	return out
}
