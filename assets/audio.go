package assets

import (
	"bytes"
	"fmt"

	"github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/zipsound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects as PCM
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound and caches it without creating a player.
// Call this at startup to avoid a hitch on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	_, err := l.pcm(id)
	return err
}

func (l *AudioLoader) pcm(id config.SoundID) ([]byte, error) {
	if data, ok := l.sfxCache[id]; ok {
		return data, nil
	}

	params, ok := config.Sound.Synth[id]
	if !ok {
		return nil, fmt.Errorf("no synth params for sound %d", id)
	}
	params.SampleRate = l.context.SampleRate()

	data := zipsound.Render(params)
	if len(data) == 0 {
		return nil, fmt.Errorf("sound %d rendered no samples", id)
	}
	l.sfxCache[id] = data
	return data, nil
}

// LoadSFX returns a new one-shot player each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

// LoadLoop returns a player that repeats the sound until paused.
func (l *AudioLoader) LoadLoop(id config.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return l.context.NewPlayer(loop)
}
