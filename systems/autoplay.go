package systems

import (
	"math"

	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/keyframe"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frameSeconds = 1.0 / 60.0

// UpdateAutoPlay advances control tweens and applies keyboard/gamepad nudges
// to the selected zipper.
func UpdateAutoPlay(e *ecs.ECS) {
	input := getOrCreateInput(e)
	selected := SelectedZipper(e)

	if selected != nil && GetAction(input, cfg.ActionAutoPlay).JustPressed {
		ToggleAutoPlay(selected)
	}

	components.AutoPlay.Each(e.World, func(entry *donburi.Entry) {
		ap := components.AutoPlay.Get(entry)
		if !ap.Active || ap.Tween == nil {
			return
		}
		v, done := ap.Tween.Update(frameSeconds)
		SetControl(entry, float64(v))
		PlayZipperSound(entry)
		if done {
			StopAutoPlay(entry)
			StopZipperSound(entry)
		}
	})

	if selected == nil || isDragging(selected) {
		return
	}
	open := GetAction(input, cfg.ActionOpen)
	closeAction := GetAction(input, cfg.ActionClose)
	delta := 0.0
	if open.Pressed {
		delta += cfg.Zipper.NudgePerFrame
	}
	if closeAction.Pressed {
		delta -= cfg.Zipper.NudgePerFrame
	}
	if delta != 0 {
		StopAutoPlay(selected)
		control := components.Control.Get(selected)
		SetControl(selected, control.Value+delta)
		PlayZipperSound(selected)
	} else if open.JustReleased || closeAction.JustReleased {
		StopZipperSound(selected)
	}
}

// ToggleAutoPlay starts sweeping the zipper to whichever end it is farther
// from, or stops a running sweep.
func ToggleAutoPlay(zipper *donburi.Entry) {
	ap := components.AutoPlay.Get(zipper)
	if ap.Active {
		StopAutoPlay(zipper)
		StopZipperSound(zipper)
		return
	}

	from := components.Control.Get(zipper).Value
	to := 1.0
	if from >= 0.5 {
		to = 0
	}
	duration := cfg.Zipper.AutoPlaySeconds * math.Abs(to-from)
	if duration <= 0 {
		return
	}

	ap.Tween = gween.New(float32(from), float32(to), float32(duration), autoPlayEase())
	ap.Active = true
	ap.Opening = to > from
}

// StopAutoPlay cancels a running sweep, leaving control where it is.
func StopAutoPlay(zipper *donburi.Entry) {
	ap := components.AutoPlay.Get(zipper)
	ap.Active = false
	ap.Tween = nil
}

func autoPlayEase() ease.TweenFunc {
	e, err := keyframe.EaseByName(cfg.Zipper.AutoPlayEase)
	if err != nil {
		return ease.Linear
	}
	return e.Func()
}

func isDragging(zipper *donburi.Entry) bool {
	h := components.Zipper.Get(zipper).Handle
	return h != nil && h.Valid() && components.Handle.Get(h).Dragging
}
