package models

import "strings"

// Choice is a stored code with its human label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type PieceStatus string

const (
	StatusLocated    PieceStatus = "LC"
	StatusNotLocated PieceStatus = "NL"
	StatusExcluded   PieceStatus = "EX"
)

var PieceStatusChoices = []Choice{
	{string(StatusLocated), "Localizado"},
	{string(StatusNotLocated), "Não localizado"},
	{string(StatusExcluded), "Excluído"},
}

type ConservationState string

const (
	ConservationGood     ConservationState = "BOM"
	ConservationFair     ConservationState = "RAZ"
	ConservationPoor     ConservationState = "RUI"
	ConservationUnusable ConservationState = "INT"
)

var ConservationChoices = []Choice{
	{string(ConservationGood), "Bom"},
	{string(ConservationFair), "Razoável"},
	{string(ConservationPoor), "Ruim"},
	{string(ConservationUnusable), "Inutilizada"},
}

type Typology string

const (
	TypologyMuseological  Typology = "MUS"
	TypologyBibliographic Typology = "BIB"
	TypologyArchival      Typology = "ARQ"
)

var TypologyChoices = []Choice{
	{string(TypologyMuseological), "Museológico"},
	{string(TypologyBibliographic), "Bibliográfico"},
	{string(TypologyArchival), "Arquivístico"},
}

type AcquisitionMethod string

const (
	AcquisitionDonation AcquisitionMethod = "DOA"
	AcquisitionPurchase AcquisitionMethod = "CMP"
	AcquisitionLoan     AcquisitionMethod = "EMP"
	AcquisitionBequest  AcquisitionMethod = "LEG"
	AcquisitionExchange AcquisitionMethod = "PMT"
	AcquisitionAward    AcquisitionMethod = "PRE"
	AcquisitionTransfer AcquisitionMethod = "TRF"
)

var AcquisitionChoices = []Choice{
	{string(AcquisitionDonation), "Doação"},
	{string(AcquisitionPurchase), "Compra"},
	{string(AcquisitionLoan), "Empréstimo/Depósito"},
	{string(AcquisitionBequest), "Legado"},
	{string(AcquisitionExchange), "Permuta"},
	{string(AcquisitionAward), "Premiação"},
	{string(AcquisitionTransfer), "Transferência"},
}

type MediaType string

const (
	MediaPhoto MediaType = "F"
	MediaVideo MediaType = "V"
	MediaAudio MediaType = "A"
)

var MediaTypeChoices = []Choice{
	{string(MediaPhoto), "Foto/Digitalização"},
	{string(MediaVideo), "Vídeo"},
	{string(MediaAudio), "Áudio"},
}

// AllowedMediaExtensions lists the extensions accepted for media files.
var AllowedMediaExtensions = []string{
	"jpg", "jpeg", "png", "gif",
	"mp4", "mov", "avi", "mkv",
	"mp3", "wav", "ogg",
	"pdf",
}

// AllowedAudioDescriptionExtensions lists the extensions accepted for audio descriptions.
var AllowedAudioDescriptionExtensions = []string{"mp3", "ogg"}

// IsChoice reports whether value is one of the codes in choices.
func IsChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ChoiceLabel returns the label for value, or value itself when unknown.
func ChoiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// ChoiceValue finds the code whose label or code matches s, ignoring case.
func ChoiceValue(choices []Choice, s string) (string, bool) {
	for _, c := range choices {
		if equalFoldTrim(c.Value, s) || equalFoldTrim(c.Label, s) {
			return c.Value, true
		}
	}
	return "", false
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
