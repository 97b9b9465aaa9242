package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary(t *testing.T) {
	lib := NewLibrary()
	require.Contains(t, lib.Folders, DefaultFolderID)
	assert.Equal(t, DefaultFolderName, lib.Folders[DefaultFolderID].Name)
	assert.Empty(t, lib.Folders[DefaultFolderID].Bookmarks)
}

func TestLibrary_Sorted(t *testing.T) {
	lib := NewLibrary()
	lib.Folders["f_2"] = &Folder{Name: "recipes", Bookmarks: []Bookmark{
		{ID: "old", Date: 100},
		{ID: "new", Date: 300},
		{ID: "mid", Date: 200},
	}}
	lib.Folders["f_1"] = &Folder{Name: "Articles"}

	views := lib.Sorted()
	require.Len(t, views, 3)
	assert.Equal(t, []string{"Articles", "General", "recipes"}, []string{views[0].Name, views[1].Name, views[2].Name})

	got := views[2].Bookmarks
	assert.Equal(t, []string{"new", "mid", "old"}, []string{got[0].ID, got[1].ID, got[2].ID})
	// the stored order is untouched
	assert.Equal(t, "old", lib.Folders["f_2"].Bookmarks[0].ID)
}
