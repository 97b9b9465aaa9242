package dto

import "page-assist/internal/domain"

// AddBookmarkRequest files a page under FolderID (general when empty or unknown).
type AddBookmarkRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	FolderID string `json:"folderId"`
}

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type CreateFolderResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FoldersResponse lists folders sorted by name, bookmarks newest first.
type FoldersResponse struct {
	Folders []domain.FolderView `json:"folders"`
}
