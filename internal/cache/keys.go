package cache

import "strings"

const (
	GlobalKeyPrefix = "pageassist"
)

// Key joins the global prefix and parts with ":".
func Key(parts ...string) string {
	return strings.Join(append([]string{GlobalKeyPrefix}, parts...), ":")
}

// BookmarkLibraryKey is where an owner's whole bookmark library lives.
func BookmarkLibraryKey(owner string) string {
	return Key("bookmarks", "library", owner)
}
