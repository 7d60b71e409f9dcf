// Package catalog looks up video metadata and stream variants through
// github.com/kkdai/youtube/v2 and classifies them into the three lists the
// windows show. It also opens the byte stream of a chosen variant for the
// download service.
package catalog
