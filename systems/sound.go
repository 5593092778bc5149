package systems

import (
	"log"

	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZipperSounds springs each playing rasp's volume towards a target set
// by how fast control is moving. Runs last so it sees this frame's control.
func UpdateZipperSounds(e *ecs.ECS) {
	components.ZipperSound.Each(e.World, func(entry *donburi.Entry) {
		sound := components.ZipperSound.Get(entry)
		control := components.Control.Get(entry)

		speed := control.Value - control.Last
		if speed < 0 {
			speed = -speed
		}
		control.Last = control.Value

		target := 0.0
		if sound.Playing {
			target = dragVolume(speed)
		}
		sound.Volume, sound.Velocity = sound.Spring.Update(sound.Volume, sound.Velocity, target)

		if sound.Player != nil {
			sound.Player.SetVolume(zipmath.Clamp01(sound.Volume) * EffectiveSFXVolume())
		}
	})
}

// dragVolume maps control change per frame onto the rasp volume.
func dragVolume(speed float64) float64 {
	s := cfg.ZipperSound
	t := 1.0
	if s.FullSpeed > 0 {
		t = zipmath.Clamp01(speed / s.FullSpeed)
	}
	return s.MinVolume + (s.MaxVolume-s.MinVolume)*t
}

// newLoopPlayer builds the looping rasp player. Without an audio device the
// zipper still tracks whether it is playing.
var newLoopPlayer = NewLoopPlayer

// PlayZipperSound starts the zipper's rasp unless it is already playing.
func PlayZipperSound(zipper *donburi.Entry) {
	sound := components.ZipperSound.Get(zipper)
	if sound.Playing {
		return
	}
	sound.Playing = true
	if sound.Player == nil {
		player, err := newLoopPlayer(cfg.SoundZipperRasp)
		if err != nil {
			log.Printf("Warning: Could not create zipper sound: %v", err)
			return
		}
		player.SetVolume(0)
		sound.Player = player
	}
	sound.Player.Play()
}

// StopZipperSound pauses the zipper's rasp.
func StopZipperSound(zipper *donburi.Entry) {
	sound := components.ZipperSound.Get(zipper)
	if sound.Player != nil {
		sound.Player.Pause()
	}
	sound.Playing = false
	sound.Volume, sound.Velocity = 0, 0
}
