package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"page-assist/internal/cache"
	"page-assist/internal/domain"
	"page-assist/internal/logger"
	"page-assist/internal/util"

	"go.uber.org/zap"
)

// BookmarkService manages a per-owner bookmark library stored wholesale in a cache.
type BookmarkService interface {
	Library(ctx context.Context, owner string) (*domain.Library, error)
	Folders(ctx context.Context, owner string) ([]domain.FolderView, error)
	AddBookmark(ctx context.Context, owner, title, url, folderID string) (*domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, owner, folderID, bookmarkID string) error
	CreateFolder(ctx context.Context, owner, name string) (string, error)
}

type bookmarkService struct {
	cache domain.Cache
	now   func() time.Time
}

func NewBookmarkService(c domain.Cache) BookmarkService {
	return &bookmarkService{
		cache: c,
		now:   time.Now,
	}
}

// Library loads the owner's library, initialising and saving the default one if absent.
func (s *bookmarkService) Library(ctx context.Context, owner string) (*domain.Library, error) {
	key := cache.BookmarkLibraryKey(owner)
	data, err := s.cache.Get(ctx, key)
	if errors.Is(err, domain.ErrCacheMiss) || (err == nil && data == "") {
		logger.Get().Debug("Bookmark library not found, creating default", zap.String("owner", owner))
		lib := domain.NewLibrary()
		if err := s.save(ctx, owner, lib); err != nil {
			return nil, err
		}
		return lib, nil
	}
	if err != nil {
		logger.Get().Error("Failed to load bookmark library", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError("failed to load bookmarks", err)
	}

	var lib domain.Library
	if err := json.Unmarshal([]byte(data), &lib); err != nil {
		logger.Get().Error("Failed to unmarshal bookmark library", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError("failed to decode bookmarks", err)
	}
	if lib.Folders == nil {
		lib.Folders = map[string]*domain.Folder{}
	}
	if _, ok := lib.Folders[domain.DefaultFolderID]; !ok {
		lib.Folders[domain.DefaultFolderID] = &domain.Folder{Name: domain.DefaultFolderName, Bookmarks: []domain.Bookmark{}}
	}
	return &lib, nil
}

func (s *bookmarkService) Folders(ctx context.Context, owner string) ([]domain.FolderView, error) {
	lib, err := s.Library(ctx, owner)
	if err != nil {
		return nil, err
	}
	return lib.Sorted(), nil
}

// AddBookmark files into folderID, or into the general folder when folderID is unknown.
func (s *bookmarkService) AddBookmark(ctx context.Context, owner, title, url, folderID string) (*domain.Bookmark, error) {
	if strings.TrimSpace(url) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("url")}
	}

	lib, err := s.Library(ctx, owner)
	if err != nil {
		return nil, err
	}

	folder, ok := lib.Folders[folderID]
	if !ok {
		folder = lib.Folders[domain.DefaultFolderID]
	}

	bm := domain.Bookmark{
		ID:    util.NewPrefixedID("bm_"),
		Title: title,
		URL:   url,
		Date:  s.now().UnixMilli(),
	}
	folder.Bookmarks = append(folder.Bookmarks, bm)

	if err := s.save(ctx, owner, lib); err != nil {
		return nil, err
	}
	return &bm, nil
}

// DeleteBookmark is a no-op when the folder or bookmark does not exist.
func (s *bookmarkService) DeleteBookmark(ctx context.Context, owner, folderID, bookmarkID string) error {
	lib, err := s.Library(ctx, owner)
	if err != nil {
		return err
	}
	folder, ok := lib.Folders[folderID]
	if !ok {
		return nil
	}

	kept := folder.Bookmarks[:0]
	for _, bm := range folder.Bookmarks {
		if bm.ID != bookmarkID {
			kept = append(kept, bm)
		}
	}
	if len(kept) == len(folder.Bookmarks) {
		return nil
	}
	folder.Bookmarks = kept
	return s.save(ctx, owner, lib)
}

func (s *bookmarkService) CreateFolder(ctx context.Context, owner, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("name")}
	}

	lib, err := s.Library(ctx, owner)
	if err != nil {
		return "", err
	}
	id := util.NewPrefixedID("f_")
	lib.Folders[id] = &domain.Folder{Name: name, Bookmarks: []domain.Bookmark{}}

	if err := s.save(ctx, owner, lib); err != nil {
		return "", err
	}
	return id, nil
}

func (s *bookmarkService) save(ctx context.Context, owner string, lib *domain.Library) error {
	key := cache.BookmarkLibraryKey(owner)
	data, err := json.Marshal(lib)
	if err != nil {
		return domain.NewInternalError("failed to encode bookmarks", err)
	}
	if err := s.cache.Set(ctx, key, string(data), 0); err != nil {
		logger.Get().Error("Failed to save bookmark library", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError("failed to save bookmarks", err)
	}
	return nil
}
