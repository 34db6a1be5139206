// Package data embeds the sample affix grammars and dictionaries used by
// tests and benchmarks.
package data

import _ "embed"

// SampleAffix and SampleDict exercise sticky derivations and invalid
// intermediate forms; they are tuned for stemming.
var (
	//go:embed sample.aff
	SampleAffix string

	//go:embed sample.dic
	SampleDict string
)

// ExpansionAffix and ExpansionDict exercise cross-product combination,
// non-cross prefixes and homonym readings; they are tuned for expansion.
var (
	//go:embed expansion.aff
	ExpansionAffix string

	//go:embed expansion.dic
	ExpansionDict string
)
