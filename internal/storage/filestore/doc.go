// Package filestore persists settings as one JSON file per setting.
//
// Layout of the configuration directory:
//
//	<dir>/
//	  editor.theme.json   -> "dark"
//	  example.json        -> {"a":1}
//
// Writes go through a temporary file in the same directory followed by a
// rename, so a reader never observes a half-written setting.
//
// The store assumes a single writer; it performs no locking.
package filestore
