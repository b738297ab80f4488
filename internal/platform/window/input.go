package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// binding maps keys to an action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var menuBindings = []binding{
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
}

var playBindings = []binding{
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape}},
}

// pressed returns the actions whose keys went down this frame, at most
// one per action. Holding a key never repeats it.
func pressed(playing bool) []core.Action {
	bindings := menuBindings
	if playing {
		bindings = playBindings
	}

	var actions []core.Action
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}
