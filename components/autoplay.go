package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AutoPlayData animates a zipper's control between closed and open.
type AutoPlayData struct {
	Tween   *gween.Tween
	Active  bool
	Opening bool
}

var AutoPlay = donburi.NewComponentType[AutoPlayData]()
