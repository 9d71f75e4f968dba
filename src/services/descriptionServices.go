package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ACORDE/memorial-acervo/src/captioning"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"gorm.io/gorm"
)

const (
	msgMissingKey       = "Chave da OpenAI não configurada nas configurações do sistema."
	msgMediaWithoutFile = "Mídia não possui arquivo associado."
	msgUnreadableMedia  = "Não foi possível ler o arquivo da mídia: %v"
	msgCaptionTransport = "Erro de comunicação com a OpenAI: %v"
	msgCaptionInvalid   = "Resposta inválida da OpenAI."
	msgCaptionEmpty     = "Resposta da OpenAI não continha texto descritivo."
)

// DescriptionError carries the HTTP status and body fields a failed
// description request is answered with.
type DescriptionError struct {
	Status  int
	Message interface{}
	Raw     interface{}
}

func (e *DescriptionError) Error() string {
	return fmt.Sprintf("descrição da mídia (%d): %v", e.Status, e.Message)
}

type DescriptionService struct {
	db        *gorm.DB
	configs   *SystemConfigService
	media     *MediaService
	store     storage.Store
	describer captioning.Describer
	log       *logger.Logger
}

func NewDescriptionService(db *gorm.DB, configs *SystemConfigService, media *MediaService, store storage.Store, describer captioning.Describer, log *logger.Logger) *DescriptionService {
	return &DescriptionService{db: db, configs: configs, media: media, store: store, describer: describer, log: log}
}

// DescribeMedia asks the captioning endpoint for a description of the media
// file and stores the returned text on the media row.
func (s *DescriptionService) DescribeMedia(ctx context.Context, pieceID, mediaID int) (string, error) {
	media, err := s.media.GetPieceMedia(pieceID, mediaID)
	if err != nil {
		return "", err
	}
	cfg, err := s.configs.GetConfig()
	if err != nil {
		return "", err
	}
	if !cfg.HasCaptionKey() {
		return "", &DescriptionError{Status: http.StatusBadRequest, Message: msgMissingKey}
	}
	if !media.HasFile() {
		return "", &DescriptionError{Status: http.StatusBadRequest, Message: msgMediaWithoutFile}
	}
	content, err := s.store.ReadFile(*media.File)
	if err != nil {
		return "", &DescriptionError{Status: http.StatusInternalServerError, Message: fmt.Sprintf(msgUnreadableMedia, err)}
	}

	s.log.Info("requesting media description", "piece_id", pieceID, "media_id", mediaID)
	text, err := s.describer.Describe(ctx, *cfg.OpenAIKey, captioning.DataURL(*media.File, content))
	if err != nil {
		s.log.Warn("media description failed", "media_id", mediaID, "error", err)
		return "", describeFailure(err)
	}

	text = strings.TrimSpace(text)
	if err := s.db.Model(media).Update("description_text", text).Error; err != nil {
		return "", err
	}
	return text, nil
}

func describeFailure(err error) error {
	var transport *captioning.TransportError
	var status *captioning.HTTPError
	var invalid *captioning.InvalidResponseError
	var empty *captioning.EmptyResponseError
	switch {
	case errors.As(err, &status):
		return &DescriptionError{Status: status.StatusCode, Message: status.Message}
	case errors.As(err, &invalid):
		return &DescriptionError{Status: http.StatusBadGateway, Message: msgCaptionInvalid, Raw: invalid.Body}
	case errors.As(err, &empty):
		return &DescriptionError{Status: http.StatusBadGateway, Message: msgCaptionEmpty, Raw: empty.Payload}
	case errors.As(err, &transport):
		return &DescriptionError{Status: http.StatusBadGateway, Message: fmt.Sprintf(msgCaptionTransport, transport.Err)}
	}
	return &DescriptionError{Status: http.StatusBadGateway, Message: fmt.Sprintf(msgCaptionTransport, err)}
}
