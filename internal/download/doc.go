// Package download saves a single chosen stream to disk. It manages the task
// lifecycle, bounds the number of parallel downloads, reports progress to
// the UI through a callback, and hands audio to the converter when the user
// asked for an MP3.
package download
