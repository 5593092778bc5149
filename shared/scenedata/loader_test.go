package scenedata

import (
	"math"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Zippers">
  <object id="1" name="jacket" class="separate_zipper" x="200" y="60">
   <properties>
    <property name="count" type="int" value="40"/>
    <property name="length" type="float" value="240"/>
    <property name="p1x" type="float" value="-30"/>
    <property name="p2x" type="float" value="-80"/>
    <property name="rotation" type="float" value="90"/>
   </properties>
   <polyline points="0,0 0,120 0,230"/>
  </object>
  <object id="2" name="pouch" class="closed_zipper" x="480" y="100">
   <properties>
    <property name="control" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Splines">
  <object id="3" name="lip" class="zipper_spline" x="480" y="100">
   <properties>
    <property name="zipper" value="pouch"/>
    <property name="spread" type="float" value="12"/>
   </properties>
   <polygon points="-40,0 0,-20 40,0 0,20"/>
  </object>
 </objectgroup>
</map>
`

func testDefaults() Defaults {
	return Defaults{
		Count:       30,
		ToothScale:  1,
		TapeOffset:  3,
		Interp:      "linear",
		TrackLength: 200,
		Spread:      40,
	}
}

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"scenes/test.tmx": {Data: []byte(testTMX)}}

	l, err := LoadLayout(fsys, "scenes/test.tmx", testDefaults())
	require.NoError(t, err)

	assert.Equal(t, "test", l.Name)
	assert.Equal(t, 640, l.Width)
	assert.Equal(t, 320, l.Height)
	require.Len(t, l.Zippers, 2)
	require.Len(t, l.Splines, 1)

	jacket := l.Zippers[0]
	assert.Equal(t, ClassSeparateZipper, jacket.Class)
	assert.Equal(t, zm.V(200, 60), jacket.Position)
	assert.Equal(t, 40, jacket.Count)
	assert.Equal(t, 3.0, jacket.TapeOffset)
	assert.Equal(t, "linear", jacket.Interp)
	assert.InDelta(t, math.Pi/2, jacket.Rotation, 1e-9)
	assert.Equal(t, zm.V(0, 240), jacket.P0)
	assert.Equal(t, zm.V(0, 120), jacket.ClosedP1)
	assert.Equal(t, zm.V(-30, 120), jacket.OpenP1)
	assert.Equal(t, zm.V(-80, 0), jacket.OpenP2)
	assert.Equal(t, zm.V(0, 0), jacket.TrackMin)
	assert.Equal(t, zm.V(0, 230), jacket.TrackMax)

	pouch, ok := l.Zipper("pouch")
	require.True(t, ok)
	assert.Equal(t, 1.0, pouch.Control)
	assert.Equal(t, zm.V(0, 200), pouch.TrackMax)

	lip := l.SplinesOf("pouch")
	require.Len(t, lip, 1)
	assert.True(t, lip[0].Closed)
	assert.Equal(t, 12.0, lip[0].Spread)
	assert.Len(t, lip[0].Points, 4)
	assert.Empty(t, l.SplinesOf("jacket"))
}

func TestLoadLayoutRejectsUnknownOwner(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="10" height="10" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Splines">
  <object id="1" name="orphan" class="zipper_spline" x="0" y="0">
   <properties><property name="zipper" value="nobody"/></properties>
   <polyline points="0,0 10,0"/>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(bad)}}

	_, err := LoadLayout(fsys, "bad.tmx", testDefaults())
	assert.ErrorContains(t, err, "unknown zipper")
}

func TestLoadLayoutRejectsBadSplineNames(t *testing.T) {
	extra := func(name string) string {
		return `  <object id="4" name="` + name + `" class="zipper_spline" x="480" y="100">
   <properties><property name="zipper" value="pouch"/></properties>
   <polygon points="-20,0 0,-10 20,0"/>
  </object>
 </objectgroup>
</map>`
	}
	tests := []struct {
		name    string
		spline  string
		wantErr string
	}{
		{"duplicate name", "lip", "duplicate spline"},
		{"empty name", "", "without a name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmx := strings.Replace(testTMX, " </objectgroup>\n</map>", extra(tt.spline), 1)
			require.NotEqual(t, testTMX, tmx)
			fsys := fstest.MapFS{"dup.tmx": {Data: []byte(tmx)}}

			_, err := LoadLayout(fsys, "dup.tmx", testDefaults())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadLayoutAllowsSameSplineNameAcrossZippers(t *testing.T) {
	l := &Layout{
		Zippers: []ZipperSpec{
			{Name: "a", Class: ClassClosedZipper},
			{Name: "b", Class: ClassClosedZipper},
		},
		Splines: []SplineSpec{
			{Name: "lip", Owner: "a"},
			{Name: "lip", Owner: "b"},
		},
	}
	assert.NoError(t, l.validate())
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout(fstest.MapFS{}, "missing.tmx", testDefaults())
	assert.Error(t, err)
}

func TestLoadAllLayouts(t *testing.T) {
	fsys := fstest.MapFS{
		"scenes/b.tmx": {Data: []byte(testTMX)},
		"scenes/a.tmx": {Data: []byte(testTMX)},
	}

	layouts, names, err := LoadAllLayouts(fsys, "scenes", testDefaults())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, layouts, 2)

	_, _, err = LoadAllLayouts(fstest.MapFS{}, "scenes", testDefaults())
	assert.Error(t, err)
}

func TestBundledScene(t *testing.T) {
	l, err := LoadLayout(os.DirFS("../../assets"), "scenes/zippers.tmx", testDefaults())
	require.NoError(t, err)

	jacket, ok := l.Zipper("jacket")
	require.True(t, ok)
	assert.Equal(t, ClassSeparateZipper, jacket.Class)
	assert.Equal(t, 40, jacket.Count)

	pouch, ok := l.Zipper("pouch")
	require.True(t, ok)
	assert.Equal(t, ClassClosedZipper, pouch.Class)
	assert.Len(t, l.SplinesOf("pouch"), 2)
}
