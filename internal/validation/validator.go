package validation

import (
	"net/url"
	"regexp"
	"strings"

	"page-assist/internal/domain"

	"github.com/oklog/ulid/v2"
)

const (
	maxClientIDLength   = 64
	maxTitleLength      = 500
	maxURLLength        = 2048
	maxFolderNameLength = 100
)

var clientIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateClientID checks the X-Client-ID header value. Empty is allowed and
// means the default client.
func (v *Validator) ValidateClientID(clientID string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if clientID == "" {
		return errors
	}
	if len(clientID) > maxClientIDLength || !clientIDPattern.MatchString(clientID) {
		errors = append(errors, domain.NewInvalidFormatError("client_id", clientID))
	}
	return errors
}

// ValidateRelayRequest only requires an action name; unknown names are
// answered by the relay itself.
func (v *Validator) ValidateRelayRequest(action string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(action) == "" {
		errors = append(errors, domain.NewMissingFieldError("action"))
	}
	return errors
}

func (v *Validator) ValidateBookmarkRequest(title, rawURL, folderID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(rawURL) == "" {
		errors = append(errors, domain.NewMissingFieldError("url"))
	} else if len(rawURL) > maxURLLength || !isValidURL(rawURL) {
		errors = append(errors, domain.NewInvalidFormatError("url", rawURL))
	}

	if len(title) > maxTitleLength {
		errors = append(errors, domain.ValidationError{Field: "title", Message: "is too long"})
	}

	if folderID != "" && !IsValidFolderID(folderID) {
		errors = append(errors, domain.NewInvalidFormatError("folder_id", folderID))
	}

	return errors
}

func (v *Validator) ValidateFolderRequest(name string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(trimmed) > maxFolderNameLength {
		errors = append(errors, domain.ValidationError{Field: "name", Message: "is too long"})
	}
	return errors
}

func (v *Validator) ValidateDeleteBookmark(folderID, bookmarkID string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if !IsValidFolderID(folderID) {
		errors = append(errors, domain.NewInvalidFormatError("folder_id", folderID))
	}
	if !hasULIDSuffix(bookmarkID, "bm_") {
		errors = append(errors, domain.NewInvalidFormatError("bookmark_id", bookmarkID))
	}
	return errors
}

// IsValidFolderID accepts the default folder id and generated "f_<ULID>" ids.
func IsValidFolderID(id string) bool {
	return id == domain.DefaultFolderID || hasULIDSuffix(id, "f_")
}

func hasULIDSuffix(id, prefix string) bool {
	if !strings.HasPrefix(id, prefix) {
		return false
	}
	_, err := ulid.ParseStrict(strings.TrimPrefix(id, prefix))
	return err == nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
