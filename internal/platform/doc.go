// Package platform contains OS integration and external tooling glue:
// filesystem helpers, save-path normalisation, playlist expansion via
// ytdlp, and OS open/reveal.
package platform
