package models

import "strings"

// ChartAccount is one node of the hierarchical chart of accounts
// (plano de contas). Paths use dotted numeric segments ("001.003");
// only level-3 leaves receive allocations.
type ChartAccount struct {
	ID          int64      `yaml:"id"`
	Level       int        `yaml:"level"`
	Path        string     `yaml:"path"`
	Description string     `yaml:"description"`
	Nature      string     `yaml:"nature"`
	ParentID    OptionalID `yaml:"parent_id"`
}

// RootSegment returns the first dotted segment of the hierarchy path,
// or the whole path when it has no dots.
func (a *ChartAccount) RootSegment() string {
	if i := strings.IndexByte(a.Path, '.'); i >= 0 {
		return a.Path[:i]
	}
	return a.Path
}

// IsRevenueFamily reports whether the account sits under the revenue root.
func (a *ChartAccount) IsRevenueFamily() bool {
	return a.RootSegment() == RootSegmentRevenue
}

// IsExpenseFamily reports whether the account sits under the expense root.
func (a *ChartAccount) IsExpenseFamily() bool {
	return a.RootSegment() == RootSegmentExpense
}
