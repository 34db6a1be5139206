// Command affixmorph stems and expands words with Hunspell-style affix
// grammars and dictionaries.
package main

import "github.com/az-ai-labs/affixmorph/internal/cli"

func main() {
	cli.Execute()
}
