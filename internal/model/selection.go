package model

import "errors"

// NoSelection marks a list without a selected row
const NoSelection = -1

var (
	// ErrNoSelection is returned when no list has a selected row
	ErrNoSelection = errors.New("no stream selected")

	// ErrAmbiguousSelection is returned when more than one list has a selected row
	ErrAmbiguousSelection = errors.New("more than one stream selected")

	// ErrStaleSelection is returned when a selected row no longer exists
	ErrStaleSelection = errors.New("selected stream is no longer available")
)

// Selection holds the selected row of each stream list
type Selection struct {
	VideoOnly   int
	Audio       int
	Progressive int
}

// EmptySelection returns a selection with nothing selected
func EmptySelection() Selection {
	return Selection{VideoOnly: NoSelection, Audio: NoSelection, Progressive: NoSelection}
}

// Resolve returns the selected stream when exactly one list has a selection
func (s Selection) Resolve(set *StreamSet) (Stream, error) {
	picked := 0
	kind := StreamKind("")
	index := NoSelection

	for _, candidate := range []struct {
		kind  StreamKind
		index int
	}{
		{StreamKindProgressive, s.Progressive},
		{StreamKindAudioOnly, s.Audio},
		{StreamKindVideoOnly, s.VideoOnly},
	} {
		if candidate.index >= 0 {
			picked++
			kind = candidate.kind
			index = candidate.index
		}
	}

	switch {
	case picked == 0:
		return Stream{}, ErrNoSelection
	case picked > 1:
		return Stream{}, ErrAmbiguousSelection
	}

	list := set.List(kind)
	if index >= len(list) {
		return Stream{}, ErrStaleSelection
	}
	return list[index], nil
}
