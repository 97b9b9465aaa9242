package validation

import (
	"strings"
	"testing"

	"page-assist/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestValidateClientID(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateClientID(""))
	assert.Empty(t, v.ValidateClientID("tab-42_popup.v1"))
	assert.Len(t, v.ValidateClientID("has space"), 1)
	assert.Len(t, v.ValidateClientID(strings.Repeat("a", 65)), 1)
}

func TestValidateRelayRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateRelayRequest("summarize"))
	assert.Empty(t, v.ValidateRelayRequest("notARealAction"))

	errs := v.ValidateRelayRequest("  ")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "action", errs[0].Field)
	}
}

func TestValidateBookmarkRequest(t *testing.T) {
	v := NewValidator()
	folder := util.NewPrefixedID("f_")

	tests := []struct {
		name     string
		title    string
		url      string
		folderID string
		fields   []string
	}{
		{"valid default folder", "Go", "https://go.dev", "general", nil},
		{"valid generated folder", "Go", "https://go.dev/doc", folder, nil},
		{"empty folder means general", "", "http://localhost:8080/x", "", nil},
		{"missing url", "Go", "", "", []string{"url"}},
		{"relative url", "Go", "/just/a/path", "", []string{"url"}},
		{"bad folder", "Go", "https://go.dev", "f_nope", []string{"folder_id"}},
		{"long title", strings.Repeat("t", 501), "https://go.dev", "", []string{"title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateBookmarkRequest(tt.title, tt.url, tt.folderID)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidateFolderRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateFolderRequest("Reading list"))
	assert.Len(t, v.ValidateFolderRequest("   "), 1)
	assert.Len(t, v.ValidateFolderRequest(strings.Repeat("n", 101)), 1)
}

func TestValidateDeleteBookmark(t *testing.T) {
	v := NewValidator()
	bm := util.NewPrefixedID("bm_")

	assert.Empty(t, v.ValidateDeleteBookmark("general", bm))
	assert.Empty(t, v.ValidateDeleteBookmark(util.NewPrefixedID("f_"), bm))
	assert.Len(t, v.ValidateDeleteBookmark("general", "bm_short"), 1)
	assert.Len(t, v.ValidateDeleteBookmark("other", "x"), 2)
}
