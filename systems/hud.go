package systems

import (
	"fmt"

	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudBarWidth   = 160
	hudBarHeight  = 6
)

var hudHelp = []string{
	"Drag a handle to zip",
	"A/D close/open  Space auto  Tab next",
	"T author  R record  L load  G gizmos  I inspector  M mute",
}

// DrawHUD renders the selected zipper's state, the editor status line and
// the key help.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	editor := GetOrCreateEditor(e)
	bold := fonts.Bold.Get()
	regular := fonts.Regular.Get()

	if zipper := SelectedZipper(e); zipper != nil {
		data := components.Zipper.Get(zipper)
		control := components.Control.Get(zipper).Value

		mode := "play"
		if editor.Authoring {
			mode = "authoring"
		}
		title := fmt.Sprintf("%s (%s)", data.Name, data.Kind)
		detail := fmt.Sprintf("control %.2f  %s", control, mode)

		vector.FillRect(screen, hudMargin-4, hudMargin-4, hudBarWidth+120, hudLineHeight*2+hudBarHeight+12, cfg.Colors.HUDTextBg, false)
		text.Draw(screen, title, bold, hudMargin, hudMargin+12, cfg.Colors.HUDText)
		text.Draw(screen, detail, regular, hudMargin, hudMargin+12+hudLineHeight, cfg.Colors.HUDText)

		barY := float32(hudMargin + hudLineHeight*2 + 2)
		vector.FillRect(screen, hudMargin, barY, hudBarWidth, hudBarHeight, cfg.Colors.HandleEdge, false)
		vector.FillRect(screen, hudMargin, barY, float32(hudBarWidth*control), hudBarHeight, cfg.Colors.Selection, false)
	}

	if editor.StatusTimer > 0 && editor.Status != "" {
		bounds := text.BoundString(regular, editor.Status)
		x := (cfg.C.Width - bounds.Dx()) / 2
		y := cfg.C.Height - hudMargin*4
		vector.FillRect(screen, float32(x-6), float32(y-14), float32(bounds.Dx()+12), 20, cfg.Colors.HUDTextBg, false)
		text.Draw(screen, editor.Status, regular, x, y, cfg.Colors.HUDText)
	}

	small := fonts.Small.Get()
	for i, line := range hudHelp {
		y := cfg.C.Height - hudMargin - (len(hudHelp)-1-i)*13
		text.Draw(screen, line, small, hudMargin, y, cfg.Colors.HUDText)
	}
	if IsMuted() {
		text.Draw(screen, "muted", small, cfg.C.Width-50, cfg.C.Height-hudMargin, cfg.Yellow)
	}
}
