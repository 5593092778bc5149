package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/UnrealXinda/Zipper/components"
	"github.com/UnrealXinda/Zipper/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// InspectorUI is the ebitenui panel that shows and edits the selected zipper
type InspectorUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	panel *widget.Container

	// Widget references for updates
	nameLabel    *widget.Label
	kindLabel    *widget.Label
	controlLabel *widget.Label
	detailLabel  *widget.Label
	authorButton *widget.Button
	gizmoButton  *widget.Button
	autoButton   *widget.Button
	volumeButton *widget.Button
	recordButton *widget.Button
	loadButton   *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewInspectorUI creates the inspector panel for a scene
func NewInspectorUI(e *ecs.ECS) *InspectorUI {
	iui := &InspectorUI{ecs: e}

	iui.loadFonts()
	iui.buildUI()

	return iui
}

func (iui *InspectorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	iui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	iui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	iui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (iui *InspectorUI) buildUI() {
	// Root container fills the screen without a background so the scene shows
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	iui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(170, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("INSPECTOR", &iui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	iui.panel.AddChild(titleLabel)

	iui.nameLabel = iui.newLabel(&iui.normalFace, color.RGBA{255, 230, 140, 255})
	iui.kindLabel = iui.newLabel(&iui.smallFace, color.RGBA{180, 180, 200, 255})
	iui.controlLabel = iui.newLabel(&iui.normalFace, color.RGBA{255, 255, 255, 255})
	iui.detailLabel = iui.newLabel(&iui.smallFace, color.RGBA{180, 180, 200, 255})
	iui.panel.AddChild(iui.nameLabel)
	iui.panel.AddChild(iui.kindLabel)
	iui.panel.AddChild(iui.controlLabel)
	iui.panel.AddChild(iui.detailLabel)

	iui.panel.AddChild(iui.buildButtonRow(
		iui.newButton("Next", func() { systems.SelectNext(iui.ecs) }),
		iui.autoButtonRef(),
	))
	iui.authorButton = iui.newButton("", func() { systems.ToggleAuthoring(iui.ecs) })
	iui.gizmoButton = iui.newButton("", func() { systems.ToggleGizmos(iui.ecs) })
	iui.panel.AddChild(iui.buildButtonRow(iui.authorButton, iui.gizmoButton))

	iui.recordButton = iui.newButton("Record", func() { systems.RecordSelected(iui.ecs) })
	iui.loadButton = iui.newButton("Load", func() { systems.LoadSelected(iui.ecs) })
	iui.panel.AddChild(iui.buildButtonRow(iui.recordButton, iui.loadButton))

	iui.volumeButton = iui.newButton("", func() { systems.CycleVolume(iui.ecs) })
	iui.panel.AddChild(iui.buildButtonRow(
		iui.volumeButton,
		iui.newButton("Mute", func() { systems.ToggleMute(iui.ecs) }),
	))

	rootContainer.AddChild(iui.panel)

	iui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (iui *InspectorUI) autoButtonRef() *widget.Button {
	iui.autoButton = iui.newButton("Auto", func() {
		if zipper := systems.SelectedZipper(iui.ecs); zipper != nil {
			systems.ToggleAutoPlay(zipper)
		}
	})
	return iui.autoButton
}

func (iui *InspectorUI) newLabel(face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{
			Idle: clr,
		}),
	)
}

func (iui *InspectorUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(75, 20)),
		widget.ButtonOpts.Image(iui.buttonImage()),
		widget.ButtonOpts.Text(label, &iui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{220, 220, 220, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			iui.UpdateUI()
		}),
	)
}

func (iui *InspectorUI) buildButtonRow(buttons ...*widget.Button) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	for _, b := range buttons {
		row.AddChild(b)
	}
	return row
}

func (iui *InspectorUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func setButtonText(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// UpdateUI updates all UI elements to reflect the selected zipper
func (iui *InspectorUI) UpdateUI() {
	editor := systems.GetOrCreateEditor(iui.ecs)
	zipper := systems.SelectedZipper(iui.ecs)

	setButtonText(iui.authorButton, "Author "+onOff(editor.Authoring))
	setButtonText(iui.gizmoButton, "Gizmos "+onOff(editor.ShowGizmos))
	setButtonText(iui.volumeButton, fmt.Sprintf("Vol %d%%", int(systems.GetSFXVolume()*100+0.5)))

	if zipper == nil {
		iui.nameLabel.Label = "no zipper"
		iui.kindLabel.Label = ""
		iui.controlLabel.Label = ""
		iui.detailLabel.Label = ""
		iui.recordButton.GetWidget().Disabled = true
		iui.loadButton.GetWidget().Disabled = true
		iui.autoButton.GetWidget().Disabled = true
		return
	}
	iui.recordButton.GetWidget().Disabled = false
	iui.loadButton.GetWidget().Disabled = false
	iui.autoButton.GetWidget().Disabled = false

	data := components.Zipper.Get(zipper)
	control := components.Control.Get(zipper).Value
	iui.nameLabel.Label = data.Name
	iui.kindLabel.Label = data.Kind.String() + " zipper"
	iui.controlLabel.Label = fmt.Sprintf("control %.2f", control)

	if zipper.HasComponent(components.SeparateZipper) {
		rig := components.SeparateZipper.Get(zipper).Rig
		iui.detailLabel.Label = fmt.Sprintf("%d teeth  %d keys", rig.Count, rig.Curve1X.Len())
	} else if zipper.HasComponent(components.ClosedZipper) {
		iui.detailLabel.Label = fmt.Sprintf("%d splines", len(components.ClosedZipper.Get(zipper).Splines))
	}

	if components.AutoPlay.Get(zipper).Active {
		setButtonText(iui.autoButton, "Stop")
	} else {
		setButtonText(iui.autoButton, "Auto")
	}
}

// Visible reports whether the panel should be drawn
func (iui *InspectorUI) Visible() bool {
	return systems.GetOrCreateEditor(iui.ecs).ShowInspector
}

// Update calls the UI's Update method and publishes the panel area so clicks
// on it do not reach the handles.
func (iui *InspectorUI) Update() {
	editor := systems.GetOrCreateEditor(iui.ecs)
	if !editor.ShowInspector {
		editor.PanelRect.Max = editor.PanelRect.Min
		return
	}

	iui.UI.Update()
	iui.UpdateUI()
	editor.PanelRect = iui.panel.GetWidget().Rect
}
