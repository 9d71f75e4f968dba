package dtos

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	"github.com/ACORDE/memorial-acervo/src/storage"
)

const MsgMediaFileRequired = "Envie um arquivo para a mídia."

// MediaRowInput is one row of the media formset of a piece.
type MediaRowInput struct {
	Index            int
	ID               int
	Type             string
	Caption          string
	DescriptionText  string
	Delete           bool
	File             *storage.Upload
	AudioDescription *storage.Upload
}

// IsEmpty reports whether a new row carries no data at all and must be skipped.
func (r MediaRowInput) IsEmpty() bool {
	return r.ID == 0 && r.File == nil && r.AudioDescription == nil &&
		strings.TrimSpace(r.Caption) == "" && strings.TrimSpace(r.DescriptionText) == ""
}

// Validate checks a row on its own. Ownership of existing ids is checked by
// the service.
func (r *MediaRowInput) Validate() *forms.Errors {
	r.Caption = strings.TrimSpace(r.Caption)
	r.DescriptionText = strings.TrimSpace(r.DescriptionText)
	if strings.TrimSpace(r.Type) == "" {
		r.Type = string(models.MediaPhoto)
	}

	errs := forms.NewErrors()
	if r.Delete {
		return errs
	}
	errs.Choice("tipo", r.Type, models.MediaTypeChoices)
	if errs.Required("legenda", r.Caption) {
		errs.MaxLength("legenda", r.Caption, 120)
	}
	if r.File == nil {
		if r.ID == 0 {
			errs.Add("arquivo", MsgMediaFileRequired)
		}
	} else if !storage.ExtensionAllowed(r.File.OriginalName, models.AllowedMediaExtensions) {
		errs.Add("arquivo", storage.ExtensionError(r.File.OriginalName, models.AllowedMediaExtensions))
	}
	if r.AudioDescription != nil && !storage.ExtensionAllowed(r.AudioDescription.OriginalName, models.AllowedAudioDescriptionExtensions) {
		errs.Add("audio_descricao", storage.ExtensionError(r.AudioDescription.OriginalName, models.AllowedAudioDescriptionExtensions))
	}
	return errs
}

// MediaDTO is a media row with its stored files exposed as URLs.
type MediaDTO struct {
	ID                  int     `json:"id"`
	PieceID             int     `json:"pieceId"`
	Type                string  `json:"type"`
	TypeLabel           string  `json:"typeLabel"`
	Caption             *string `json:"caption"`
	DescriptionText     string  `json:"descriptionText"`
	UploadDate          string  `json:"uploadDate"`
	FileURL             *string `json:"fileUrl"`
	AudioDescriptionURL *string `json:"audioDescriptionUrl"`
	QRCodeURL           *string `json:"qrCodeUrl"`
}

// URLBuilder turns a stored file name into a URL.
type URLBuilder func(name string) string

func NewMediaDTO(m models.MediaModel, url URLBuilder) MediaDTO {
	return MediaDTO{
		ID:                  m.ID,
		PieceID:             m.PieceID,
		Type:                string(m.Type),
		TypeLabel:           models.ChoiceLabel(models.MediaTypeChoices, string(m.Type)),
		Caption:             m.Caption,
		DescriptionText:     m.DescriptionText,
		UploadDate:          m.UploadDate.String(),
		FileURL:             fileURL(m.File, url),
		AudioDescriptionURL: fileURL(m.AudioDescription, url),
		QRCodeURL:           fileURL(m.QRCode, url),
	}
}

func NewMediaDTOs(media []models.MediaModel, url URLBuilder) []MediaDTO {
	out := make([]MediaDTO, 0, len(media))
	for _, m := range media {
		out = append(out, NewMediaDTO(m, url))
	}
	return out
}

func fileURL(name *string, url URLBuilder) *string {
	if name == nil || *name == "" {
		return nil
	}
	u := url(*name)
	return &u
}

// DriveImportInput asks for a media file to be fetched from a Drive link.
type DriveImportInput struct {
	URL     string `json:"url"`
	Type    string `json:"type"`
	Caption string `json:"caption"`
}

func (in *DriveImportInput) Validate() *forms.Errors {
	in.URL = strings.TrimSpace(in.URL)
	in.Caption = strings.TrimSpace(in.Caption)
	if strings.TrimSpace(in.Type) == "" {
		in.Type = string(models.MediaPhoto)
	}
	errs := forms.NewErrors()
	errs.Required("url", in.URL)
	errs.Choice("type", in.Type, models.MediaTypeChoices)
	if errs.Required("caption", in.Caption) {
		errs.MaxLength("caption", in.Caption, 120)
	}
	return errs
}
