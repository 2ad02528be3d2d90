package driver

import (
	"slices"
	"strings"
)

// Category tags a scenario with the conditions it needs or the effects it
// has. A run enables and excludes categories instead of toggling scenarios
// one by one.
type Category string

const (
	// CategoryStable scenarios are expected to pass against the deployed
	// contract on every run.
	CategoryStable Category = "stable"
	// CategoryNeedsFunds scenarios pay fees or transfer tokens.
	CategoryNeedsFunds Category = "needs-funds"
	// CategoryDestructive scenarios create on-chain state which is not
	// cleaned up (code uploads, new contracts, transfers).
	CategoryDestructive Category = "destructive"
	// CategoryFaucet scenarios depend on the public faucet.
	CategoryFaucet Category = "faucet"
	// CategoryOffline scenarios never touch the network.
	CategoryOffline Category = "offline"
)

// AllCategories returns every known category.
func AllCategories() []Category {
	return []Category{
		CategoryStable,
		CategoryNeedsFunds,
		CategoryDestructive,
		CategoryFaucet,
		CategoryOffline,
	}
}

// ParseCategories parses category names, accepting comma separated lists in
// any element. Empty names are ignored.
func ParseCategories(names ...string) ([]Category, error) {
	var categories []Category
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}

			category := Category(part)
			if !slices.Contains(AllCategories(), category) {
				return nil, ErrDriverInvalidCategory.Wrapf("%q, expected one of %v", part, AllCategories())
			}
			if !slices.Contains(categories, category) {
				categories = append(categories, category)
			}
		}
	}
	return categories, nil
}

// Selection decides which scenarios of a run are executed.
//
// A scenario is selected when it is named in Names, or, when Names is empty,
// when it carries at least one of Categories. In both cases a scenario which
// carries any of Exclude is not selected.
type Selection struct {
	Categories []Category
	Exclude    []Category
	Names      []string
}

// DefaultSelection runs the stable scenarios only.
func DefaultSelection() Selection {
	return Selection{Categories: []Category{CategoryStable}}
}

// Selects reports whether scenario runs under the selection.
func (s Selection) Selects(scenario Scenario) bool {
	for _, category := range s.Exclude {
		if scenario.HasCategory(category) {
			return false
		}
	}

	if len(s.Names) > 0 {
		return slices.ContainsFunc(s.Names, func(name string) bool {
			return strings.EqualFold(strings.TrimSpace(name), scenario.Name)
		})
	}

	for _, category := range s.Categories {
		if scenario.HasCategory(category) {
			return true
		}
	}
	return false
}
