// Package ui contains the Fyne windows of both applications: the stream
// picker with its three lists and the single-button music downloader.
// Network and disk work runs on goroutines; results reach widgets through
// fyne.Do. All UI strings are localized via Localization.
package ui
