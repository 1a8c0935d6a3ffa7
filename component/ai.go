package component

import "github.com/lixenwraith/crab-arena/core"

// AIComponent holds the targeting state of an AI crab
type AIComponent struct {
	Target core.Entity // core.NoEntity when no ball is available
}
