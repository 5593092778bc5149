package systems

import (
	"github.com/UnrealXinda/Zipper/components"
	"github.com/UnrealXinda/Zipper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHandles picks the handle under the cursor and turns mouse presses
// into HandleDown / HandleDragged / HandleUp for its zipper.
func UpdateHandles(e *ecs.ECS) {
	mouse := getOrCreateMouse(e)
	editor := GetOrCreateEditor(e)
	button := mouse.Button()

	hovered := handleUnderCursor(e, mouse)

	components.Handle.Each(e.World, func(entry *donburi.Entry) {
		h := components.Handle.Get(entry)
		h.Hovered = entry == hovered

		if !h.Dragging {
			return
		}
		if !button.Pressed {
			h.Dragging = false
			HandleUp(e, h.Zipper)
			return
		}
		HandleDragged(e, h.Zipper, mouse.World)
	})

	if !button.JustPressed || hovered == nil {
		return
	}
	// Gizmo points sit on top of handles while authoring.
	if editor.Authoring && gizmoUnderCursor(e, editor, mouse.World) {
		return
	}

	h := components.Handle.Get(hovered)
	h.Dragging = true
	selectZipper(e, editor, h.Zipper)
	HandleDown(e, h.Zipper)
}

// handleUnderCursor moves the cursor object to the mouse and returns the
// handle it overlaps, if any.
func handleUnderCursor(e *ecs.ECS, mouse *components.MouseData) *donburi.Entry {
	cursorEntry, ok := tags.Cursor.First(e.World)
	if !ok {
		return nil
	}
	cursor := components.Object.Get(cursorEntry)
	cursor.X = mouse.World.X
	cursor.Y = mouse.World.Y
	cursor.Update()

	if mouse.OverUI {
		return nil
	}

	check := cursor.Check(0, 0, tags.ResolvHandle)
	if check == nil {
		return nil
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvHandle) {
		// Check is cell based; confirm the cursor is inside the box.
		if !contains(obj, mouse.World.X, mouse.World.Y) {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry
		}
	}
	return nil
}

func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x <= obj.X+obj.W && y >= obj.Y && y <= obj.Y+obj.H
}
