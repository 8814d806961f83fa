package audio

import (
	"github.com/lixenwraith/holofolio/typewriter"
)

// TypewriterHook maps typewriter transitions to key and erase clicks
func (sm *SoundManager) TypewriterHook() typewriter.StepFunc {
	return func(prev, next typewriter.State, _ string) {
		switch {
		case next.Index == prev.Index && next.Visible > prev.Visible:
			sm.PlayKey()
		case next.Index != prev.Index || next.Visible < prev.Visible:
			sm.PlayErase()
		}
	}
}
