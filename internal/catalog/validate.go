package catalog

import (
	"fmt"
	"sort"
)

// validatePools performs all structural checks on the given pools.
// Returns a *ConfigurationError describing every problem found, or nil.
func validatePools(pools map[Domain][]Question) error {
	var errs []string

	domains := make([]Domain, 0, len(pools))
	for d := range pools {
		domains = append(domains, d)
	}
	sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })

	seen := make(map[string]Domain)
	total := 0
	for _, d := range domains {
		pool := pools[d]
		if d == "" {
			errs = append(errs, "pool with empty domain name")
		}
		if len(pool) == 0 {
			errs = append(errs, fmt.Sprintf("pool %q has no questions", d))
		}
		total += len(pool)

		for _, q := range pool {
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("pool %q has a question with empty ID", d))
				continue
			}
			if prev, dup := seen[q.ID]; dup {
				errs = append(errs, fmt.Sprintf("duplicate question ID %q (pools %q and %q)", q.ID, prev, d))
			}
			seen[q.ID] = d

			if q.Priority < 1 || q.Priority > 5 {
				errs = append(errs, fmt.Sprintf("question %q: priority must be in [1, 5], got %d", q.ID, q.Priority))
			}
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
			}
			keys := make(map[string]bool, len(q.Options))
			for _, o := range q.Options {
				if o.Key == "" {
					errs = append(errs, fmt.Sprintf("question %q has an option with empty key", q.ID))
					continue
				}
				if keys[o.Key] {
					errs = append(errs, fmt.Sprintf("question %q has duplicate option key %q", q.ID, o.Key))
				}
				keys[o.Key] = true
			}
		}
	}

	if n := len(pools[DomainGeneral]); n < MinGeneralQuestions {
		errs = append(errs, fmt.Sprintf("pool %q must have at least %d questions, got %d", DomainGeneral, MinGeneralQuestions, n))
	}
	if total < MinTotalQuestions {
		errs = append(errs, fmt.Sprintf("catalog must have at least %d questions in total, got %d", MinTotalQuestions, total))
	}

	if len(errs) > 0 {
		return &ConfigurationError{Problems: errs}
	}
	return nil
}
