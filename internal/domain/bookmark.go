package domain

import (
	"sort"
	"strings"
)

const (
	DefaultFolderID   = "general"
	DefaultFolderName = "General"
)

// Bookmark is a saved page. Date is milliseconds since the Unix epoch.
type Bookmark struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  int64  `json:"date"`
}

type Folder struct {
	Name      string     `json:"name"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// Library is the whole bookmark document; it is read and written wholesale.
type Library struct {
	Folders map[string]*Folder `json:"folders"`
}

// NewLibrary returns the default library holding only the general folder.
func NewLibrary() *Library {
	return &Library{
		Folders: map[string]*Folder{
			DefaultFolderID: {Name: DefaultFolderName, Bookmarks: []Bookmark{}},
		},
	}
}

// FolderView is a folder with its id, as listed to callers.
type FolderView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// Sorted lists folders by name (case-insensitive), each with its bookmarks
// newest first. The library itself is not modified.
func (l *Library) Sorted() []FolderView {
	views := make([]FolderView, 0, len(l.Folders))
	for id, f := range l.Folders {
		bms := make([]Bookmark, len(f.Bookmarks))
		copy(bms, f.Bookmarks)
		sort.SliceStable(bms, func(i, j int) bool { return bms[i].Date > bms[j].Date })
		views = append(views, FolderView{ID: id, Name: f.Name, Bookmarks: bms})
	}
	sort.Slice(views, func(i, j int) bool {
		ni, nj := strings.ToLower(views[i].Name), strings.ToLower(views[j].Name)
		if ni != nj {
			return ni < nj
		}
		return views[i].ID < views[j].ID
	})
	return views
}
