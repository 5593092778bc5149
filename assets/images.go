package assets

import (
	"github.com/UnrealXinda/Zipper/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageLoader builds and caches the generated sprites.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]*ebiten.Image)}
}

var imageLoader = NewImageLoader()

func (l *ImageLoader) get(key string, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}
	img := build()
	l.cache[key] = img
	return img
}

// ToothImage is a single tooth pointing up (-Y), anchored at its center.
func ToothImage() *ebiten.Image {
	return imageLoader.get("tooth", func() *ebiten.Image {
		w, h := config.Zipper.ToothWidth, config.Zipper.ToothHeight
		img := ebiten.NewImage(w, h)
		img.Fill(config.Colors.ToothEdge)
		vector.FillRect(img, 1, 1, float32(w-2), float32(h-2), config.Colors.Tooth, false)
		// Scoop on the leading edge where the neighbour tooth locks in.
		vector.FillRect(img, float32(w)/2-1, 0, 2, 2, config.Colors.ToothEdge, false)
		return img
	})
}

// HandleImage is the pull tab, anchored at its top center.
func HandleImage(active bool) *ebiten.Image {
	key := "handle"
	fill := config.Colors.Handle
	if active {
		key = "handle-active"
		fill = config.Colors.HandleActive
	}
	return imageLoader.get(key, func() *ebiten.Image {
		w := float32(config.Zipper.HandleWidth)
		h := float32(config.Zipper.HandleHeight)
		img := ebiten.NewImage(int(w), int(h))
		vector.FillRect(img, 0, 0, w, h*0.35, config.Colors.HandleEdge, true)
		vector.FillRect(img, w*0.15, h*0.3, w*0.7, h*0.7, fill, true)
		vector.StrokeRect(img, w*0.15, h*0.3, w*0.7, h*0.7, 1, config.Colors.HandleEdge, true)
		vector.FillCircle(img, w/2, h*0.8, w*0.12, config.Colors.HandleEdge, true)
		return img
	})
}

// WhitePixel is the source image for filled triangles.
func WhitePixel() *ebiten.Image {
	return imageLoader.get("white", func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(config.White)
		return img
	})
}
