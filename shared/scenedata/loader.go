package scenedata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/lafriks/go-tiled"
)

// Defaults fills properties a scene object leaves out.
type Defaults struct {
	Count              int
	ToothScale         float64
	TapeOffset         float64
	LongitudinalOffset float64
	Interp             string
	TrackLength        float64
	Spread             float64
}

// LoadLayout parses a TMX file. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string, def Defaults) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupZippers:
			for _, o := range og.Objects {
				z, err := parseZipper(o, def)
				if err != nil {
					return nil, fmt.Errorf("%s: zipper %q: %w", tmxPath, o.Name, err)
				}
				layout.Zippers = append(layout.Zippers, z)
			}
		case GroupSplines:
			for _, o := range og.Objects {
				s, err := parseSpline(o, def)
				if err != nil {
					return nil, fmt.Errorf("%s: spline %q: %w", tmxPath, o.Name, err)
				}
				layout.Splines = append(layout.Splines, s)
			}
		}
	}

	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return layout, nil
}

// LoadAllLayouts discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, dir string, def Defaults) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		l, err := LoadLayout(fsys, path, def)
		if err != nil {
			return nil, nil, err
		}
		layouts[l.Name] = l
		names = append(names, l.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}

// Zipper returns the zipper with the given name.
func (l *Layout) Zipper(name string) (ZipperSpec, bool) {
	for _, z := range l.Zippers {
		if z.Name == name {
			return z, true
		}
	}
	return ZipperSpec{}, false
}

// SplinesOf returns the splines owned by the named zipper, in file order.
func (l *Layout) SplinesOf(owner string) []SplineSpec {
	var out []SplineSpec
	for _, s := range l.Splines {
		if s.Owner == owner {
			out = append(out, s)
		}
	}
	return out
}

func (l *Layout) validate() error {
	seen := map[string]bool{}
	for _, z := range l.Zippers {
		if z.Name == "" {
			return fmt.Errorf("zipper without a name")
		}
		if seen[z.Name] {
			return fmt.Errorf("duplicate zipper %q", z.Name)
		}
		seen[z.Name] = true
	}
	splineNames := map[string]map[string]bool{}
	for _, s := range l.Splines {
		if s.Name == "" {
			return fmt.Errorf("spline of zipper %q without a name", s.Owner)
		}
		if splineNames[s.Owner] == nil {
			splineNames[s.Owner] = map[string]bool{}
		}
		if splineNames[s.Owner][s.Name] {
			return fmt.Errorf("duplicate spline %q in zipper %q", s.Name, s.Owner)
		}
		splineNames[s.Owner][s.Name] = true

		z, ok := l.Zipper(s.Owner)
		if !ok {
			return fmt.Errorf("spline %q: unknown zipper %q", s.Name, s.Owner)
		}
		if z.Class != ClassClosedZipper {
			return fmt.Errorf("spline %q: zipper %q is not a %s", s.Name, s.Owner, ClassClosedZipper)
		}
	}
	return nil
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}

func parseZipper(o *tiled.Object, def Defaults) (ZipperSpec, error) {
	class := objectClass(o)
	if class != ClassSeparateZipper && class != ClassClosedZipper {
		return ZipperSpec{}, fmt.Errorf("unknown class %q", class)
	}

	p := props(o.Properties)
	length := p.getFloat("length", def.TrackLength)

	z := ZipperSpec{
		Name:               o.Name,
		Class:              class,
		Position:           zm.V(o.X, o.Y),
		Rotation:           p.getFloat("rotation", 0) * math.Pi / 180,
		Scale:              p.getFloat("scale", 1),
		Count:              p.getInt("count", def.Count),
		ToothScale:         p.getFloat("toothScale", def.ToothScale),
		TapeOffset:         p.getFloat("tapeOffset", def.TapeOffset),
		LongitudinalOffset: p.getFloat("longitudinalOffset", def.LongitudinalOffset),
		Interp:             p.getString("interp", def.Interp),
		P0:                 zm.V(p.getFloat("p0x", 0), p.getFloat("p0y", length)),
		Control:            zm.Clamp01(p.getFloat("control", 0)),
	}
	z.ClosedP1 = zm.V(0, (z.P0.Y)/2)
	z.ClosedP2 = zm.V(0, 0)
	z.OpenP1 = zm.V(p.getFloat("p1x", z.ClosedP1.X), p.getFloat("p1y", z.ClosedP1.Y))
	z.OpenP2 = zm.V(p.getFloat("p2x", z.ClosedP2.X), p.getFloat("p2y", z.ClosedP2.Y))

	// The first polyline is the handle track; default to the zipper axis.
	z.TrackMin = zm.V(0, 0)
	z.TrackMax = zm.V(0, length)
	if pts := polyline(o); len(pts) >= 2 {
		z.TrackMin = pts[0]
		z.TrackMax = pts[len(pts)-1]
	}
	return z, nil
}

func parseSpline(o *tiled.Object, def Defaults) (SplineSpec, error) {
	if class := objectClass(o); class != ClassZipperSpline {
		return SplineSpec{}, fmt.Errorf("unknown class %q", class)
	}

	p := props(o.Properties)
	s := SplineSpec{
		Name:     o.Name,
		Owner:    p.getString("zipper", ""),
		Position: zm.V(o.X, o.Y),
		Spread:   p.getFloat("spread", def.Spread),
	}
	if s.Owner == "" {
		return SplineSpec{}, fmt.Errorf("missing zipper property")
	}

	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		s.Closed = true
		for _, pt := range *o.Polygons[0].Points {
			s.Points = append(s.Points, zm.V(pt.X, pt.Y))
		}
	} else {
		s.Points = polyline(o)
	}
	if len(s.Points) < 2 {
		return SplineSpec{}, fmt.Errorf("needs at least 2 points, got %d", len(s.Points))
	}
	return s, nil
}

func polyline(o *tiled.Object) []zm.Vec2 {
	if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil {
		return nil
	}
	pts := make([]zm.Vec2, 0, len(*o.PolyLines[0].Points))
	for _, pt := range *o.PolyLines[0].Points {
		pts = append(pts, zm.V(pt.X, pt.Y))
	}
	return pts
}

// props looks up Tiled custom properties with defaults for missing or
// malformed values.
type props tiled.Properties

func (p props) raw(name string) (string, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}

func (p props) getString(name, def string) string {
	if v, ok := p.raw(name); ok {
		return v
	}
	return def
}

func (p props) getFloat(name string, def float64) float64 {
	v, ok := p.raw(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func (p props) getInt(name string, def int) int {
	v, ok := p.raw(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
