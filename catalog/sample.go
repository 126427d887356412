package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/poiesic/emojit/core"
)

//go:embed data/sample.json
var sampleJSON []byte

var sampleEntries []core.EmojiEntry

func init() {
	var err error
	sampleEntries, err = Parse(sampleJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded sample dataset is broken: %v", err))
	}
}

// Sample returns the small emoji catalog embedded in the binary. It is
// meant for demos, seeding and tests; production hosts load their own
// versioned dataset. The returned entries must be treated as
// immutable.
func Sample() []core.EmojiEntry {
	return slices.Clone(sampleEntries)
}
