package dtos

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
)

// LabelInput is the payload of single-label entities: organizing axes and
// internal locations.
type LabelInput struct {
	Label string `json:"label"`
}

func (in *LabelInput) Validate() *forms.Errors {
	in.Label = strings.TrimSpace(in.Label)
	errs := forms.NewErrors()
	if errs.Required("label", in.Label) {
		errs.MaxLength("label", in.Label, 100)
	}
	return errs
}

type EventTypeInput struct {
	Description string `json:"description"`
}

func (in *EventTypeInput) Validate() *forms.Errors {
	in.Description = strings.TrimSpace(in.Description)
	errs := forms.NewErrors()
	if errs.Required("description", in.Description) {
		errs.MaxLength("description", in.Description, 100)
	}
	return errs
}

// SystemConfigInput updates the configuration row. A blank key clears it.
type SystemConfigInput struct {
	OpenAIKey *string `json:"openAiKey"`
}

func (in *SystemConfigInput) Normalize() {
	in.OpenAIKey = optional(in.OpenAIKey)
}

// SystemConfigDTO never exposes the key itself.
type SystemConfigDTO struct {
	ID              int    `json:"id"`
	HasOpenAIKey    bool   `json:"hasOpenAiKey"`
	MaskedOpenAIKey string `json:"maskedOpenAiKey,omitempty"`
}

func NewSystemConfigDTO(c models.SystemConfigModel) SystemConfigDTO {
	dto := SystemConfigDTO{ID: c.ID, HasOpenAIKey: c.HasCaptionKey()}
	if dto.HasOpenAIKey {
		dto.MaskedOpenAIKey = maskKey(*c.OpenAIKey)
	}
	return dto
}

func maskKey(key string) string {
	runes := []rune(key)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
