// Package model defines the transient data shown by the windows: video
// metadata, stream descriptors grouped by kind, list selections, download
// tasks and history entries. Everything here is valid only until the next
// search.
package model
