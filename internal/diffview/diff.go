// Package diffview renders the textual comparison between two BRD
// versions. Versions are immutable snapshots, so a diff is a pure
// function of the two markdown bodies.
package diffview

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified renders a unified diff between two version bodies, labelled
// v1 and v2 like the compare endpoint's query parameters.
func Unified(a, b string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "v1",
		ToFile:   "v2",
		Context:  3,
	})
}
