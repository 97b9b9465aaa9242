package handler

import (
	"strings"

	"page-assist/internal/domain"
	"page-assist/internal/dto"
	"page-assist/internal/middleware"
	"page-assist/internal/service"
	"page-assist/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// BookmarkHandler handles bookmark and folder requests for the calling client.
type BookmarkHandler struct {
	service   service.BookmarkService
	validator *validation.Validator
}

func NewBookmarkHandler(svc service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		service:   svc,
		validator: validation.NewValidator(),
	}
}

// ListFolders godoc
// @Summary List bookmarks
// @Tags bookmarks
// @Produce json
// @Success 200 {object} dto.FoldersResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /bookmarks [get]
func (h *BookmarkHandler) ListFolders(c *fiber.Ctx) error {
	folders, err := h.service.Folders(c.UserContext(), middleware.ClientID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.FoldersResponse{Folders: folders})
}

// AddBookmark godoc
// @Summary Save a bookmark
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param request body dto.AddBookmarkRequest true "Bookmark"
// @Success 201 {object} domain.Bookmark
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /bookmarks [post]
func (h *BookmarkHandler) AddBookmark(c *fiber.Ctx) error {
	var req dto.AddBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateBookmarkRequest(req.Title, req.URL, req.FolderID); len(errs) > 0 {
		return errs
	}

	bm, err := h.service.AddBookmark(c.UserContext(), middleware.ClientID(c), req.Title, req.URL, req.FolderID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(bm)
}

// DeleteBookmark godoc
// @Summary Delete a bookmark
// @Tags bookmarks
// @Param folderId path string true "Folder id"
// @Param bookmarkId path string true "Bookmark id"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /bookmarks/{folderId}/{bookmarkId} [delete]
func (h *BookmarkHandler) DeleteBookmark(c *fiber.Ctx) error {
	err := h.service.DeleteBookmark(c.UserContext(), middleware.ClientID(c), c.Params("folderId"), c.Params("bookmarkId"))
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateFolder godoc
// @Summary Create a bookmark folder
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param request body dto.CreateFolderRequest true "Folder"
// @Success 201 {object} dto.CreateFolderResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /folders [post]
func (h *BookmarkHandler) CreateFolder(c *fiber.Ctx) error {
	var req dto.CreateFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateFolderRequest(req.Name); len(errs) > 0 {
		return errs
	}

	id, err := h.service.CreateFolder(c.UserContext(), middleware.ClientID(c), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateFolderResponse{ID: id, Name: strings.TrimSpace(req.Name)})
}
