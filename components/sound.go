package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// ZipperSoundData is the looping rasp of one zipper.
type ZipperSoundData struct {
	Player  *audio.Player
	Playing bool

	// Volume follows drag speed through a spring.
	Spring   harmonica.Spring
	Volume   float64
	Velocity float64
}

var ZipperSound = donburi.NewComponentType[ZipperSoundData]()
