package config

import (
	"time"

	"github.com/UnrealXinda/Zipper/shared/zipsound"
)

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Looping rasp played while a handle is dragged
	SoundZipperRasp
	// Editor feedback
	SoundRecord
	SoundLoad
	SoundSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ZipperSoundConfig tunes the drag-driven rasp volume
type ZipperSoundConfig struct {
	SpringFrequency float64 // harmonica angular frequency
	SpringDamping   float64 // harmonica damping ratio
	MinVolume       float64 // volume while the handle is held still
	MaxVolume       float64
	FullSpeed       float64 // control change per frame that reaches MaxVolume
}

// SoundConfig maps sound IDs to synthesis parameters
type SoundConfig struct {
	Synth             map[SoundID]zipsound.Params
	Looping           map[SoundID]bool
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig
var ZipperSound ZipperSoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	ZipperSound = ZipperSoundConfig{
		SpringFrequency: 8.0,
		SpringDamping:   1.0,
		MinVolume:       0.15,
		MaxVolume:       1.0,
		FullSpeed:       0.02,
	}

	blip := func(tone float64, seed int64) zipsound.Params {
		return zipsound.Params{
			SampleRate:  Audio.SampleRate,
			Duration:    60 * time.Millisecond,
			ClickRate:   1,
			ClickLength: 60 * time.Millisecond,
			ClickTone:   tone,
			ClickLevel:  0.6,
			Seed:        seed,
		}
	}

	Sound = SoundConfig{
		Synth: map[SoundID]zipsound.Params{
			SoundZipperRasp: {
				SampleRate:  Audio.SampleRate,
				Duration:    time.Second,
				ClickRate:   45,
				ClickLength: 7 * time.Millisecond,
				ClickTone:   2600,
				ClickLevel:  0.7,
				NoiseLevel:  0.25,
				Seed:        1,
			},
			SoundRecord: blip(1200, 2),
			SoundLoad:   blip(800, 3),
			SoundSelect: blip(1600, 4),
		},
		Looping: map[SoundID]bool{
			SoundZipperRasp: true,
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSelect: 0.6,
		},
	}
}
