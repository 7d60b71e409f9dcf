package model

// PlaylistVideo is one entry of a playlist offered for picking
type PlaylistVideo struct {
	ID    string
	Title string
	URL   string
	Index int
}

// Playlist is the resolved content of a playlist URL
type Playlist struct {
	ID     string
	Title  string
	URL    string
	Videos []PlaylistVideo
}

// DefaultPlaylistTitle is used when the playlist has no entries to name it after
const DefaultPlaylistTitle = "Unknown Playlist"
