package video

import (
	"strings"
	"unicode/utf8"

	"github.com/reelstack/catalog/internal/domain/validation"
)

const (
	titleMaxLength       = 255
	descriptionMaxLength = 4000
)

// validator checks the Video field invariants. It is invoked explicitly via
// Video.Validate, never by the constructors.
type validator struct {
	video   *Video
	handler validation.Handler
}

func newValidator(v *Video, handler validation.Handler) *validator {
	return &validator{video: v, handler: handler}
}

func (v *validator) validate() {
	v.checkTitle()
	v.checkDescription()
	v.checkLaunchedAt()
	v.checkRating()
}

func (v *validator) checkTitle() {
	title := v.video.Title()
	if strings.TrimSpace(title) == "" {
		v.handler.Append(validation.NewError("'title' should not be empty"))
		return
	}
	// Bounds are in characters, not bytes.
	if utf8.RuneCountInString(strings.TrimSpace(title)) > titleMaxLength {
		v.handler.Append(validation.NewError("'title' must be between 1 and 255 characters"))
	}
}

func (v *validator) checkDescription() {
	description := v.video.Description()
	if strings.TrimSpace(description) == "" {
		v.handler.Append(validation.NewError("'description' should not be empty"))
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) > descriptionMaxLength {
		v.handler.Append(validation.NewError("'description' must be between 1 and 4000 characters"))
	}
}

func (v *validator) checkLaunchedAt() {
	if v.video.LaunchedAt() == 0 {
		v.handler.Append(validation.NewError("'launchedAt' should not be null"))
	}
}

func (v *validator) checkRating() {
	if v.video.Rating() == "" {
		v.handler.Append(validation.NewError("'rating' should not be null"))
	}
}
