package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-streams/internal/model"
)

// StreamList is a titled single-selection list of stream labels.
// Positions map to the streams passed to SetStreams.
type StreamList struct {
	title    *widget.Label
	list     *widget.List
	streams  []model.Stream
	selected int
	content  *fyne.Container

	// OnChanged runs after the selection changes
	OnChanged func(selected int)
}

// NewStreamList creates an empty list with the given heading
func NewStreamList(title string) *StreamList {
	sl := &StreamList{selected: model.NoSelection}

	sl.title = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	sl.list = widget.NewList(
		func() int {
			return len(sl.streams)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(sl.streams) {
				obj.(*widget.Label).SetText(sl.streams[id].Label())
			}
		},
	)
	sl.list.OnSelected = func(id widget.ListItemID) {
		sl.selected = id
		sl.changed()
	}
	sl.list.OnUnselected = func(id widget.ListItemID) {
		if sl.selected == id {
			sl.selected = model.NoSelection
			sl.changed()
		}
	}

	// Transparent spacer gives the list its height; lists have no MinSize of their own
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(StreamListMinWidth, StreamListMinHeight))

	sl.content = container.NewBorder(sl.title, nil, nil, nil, container.NewStack(spacer, sl.list))
	return sl
}

func (sl *StreamList) changed() {
	if sl.OnChanged != nil {
		sl.OnChanged(sl.selected)
	}
}

// Container returns the list's canvas object
func (sl *StreamList) Container() *fyne.Container {
	return sl.content
}

// SetTitle changes the heading
func (sl *StreamList) SetTitle(title string) {
	sl.title.SetText(title)
}

// Title returns the heading
func (sl *StreamList) Title() string {
	return sl.title.Text
}

// SetStreams replaces the rows and clears the selection
func (sl *StreamList) SetStreams(streams []model.Stream) {
	sl.list.UnselectAll()
	sl.streams = streams
	sl.selected = model.NoSelection
	sl.list.Refresh()
}

// Clear removes all rows
func (sl *StreamList) Clear() {
	sl.SetStreams(nil)
}

// Len returns the number of rows
func (sl *StreamList) Len() int {
	return len(sl.streams)
}

// Label returns the text of row id
func (sl *StreamList) Label(id int) string {
	if id < 0 || id >= len(sl.streams) {
		return ""
	}
	return sl.streams[id].Label()
}

// Select selects row id
func (sl *StreamList) Select(id int) {
	sl.list.Select(id)
}

// Selected returns the selected row or model.NoSelection
func (sl *StreamList) Selected() int {
	return sl.selected
}

// UnselectAll clears the selection
func (sl *StreamList) UnselectAll() {
	sl.list.UnselectAll()
	sl.selected = model.NoSelection
}

// SetEnabled dims the heading while the window is busy. widget.List has no
// disabled state; Download stays disabled instead.
func (sl *StreamList) SetEnabled(enabled bool) {
	if enabled {
		sl.title.Importance = widget.MediumImportance
	} else {
		sl.title.Importance = widget.LowImportance
	}
	sl.title.Refresh()
}
