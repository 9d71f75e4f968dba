package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/storage"
	"github.com/gin-gonic/gin"
)

const (
	pieceField    = "peca"
	mediaPrefix   = "midia"
	maxFormsetRow = 1000
)

// pieceRequest is the decoded body of a piece create or update.
type pieceRequest struct {
	piece   dtos.PieceInput
	rows    []dtos.MediaRowInput
	closers []io.Closer
}

func (p *pieceRequest) Close() {
	closeAll(p.closers)
}

func isMultipart(ctx *gin.Context) bool {
	return strings.HasPrefix(ctx.ContentType(), "multipart/form-data")
}

// bindPieceRequest reads either a JSON piece or a multipart submission with
// the piece as a JSON string in the "peca" field plus the media formset.
func bindPieceRequest(ctx *gin.Context) (*pieceRequest, error) {
	req := &pieceRequest{}
	if !isMultipart(ctx) {
		if err := ctx.ShouldBindJSON(&req.piece); err != nil {
			return nil, err
		}
		return req, nil
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("formulário multipart inválido: %w", err)
	}
	raw := formValue(form, pieceField)
	if raw == "" {
		return nil, fmt.Errorf("campo %q ausente", pieceField)
	}
	if err := json.Unmarshal([]byte(raw), &req.piece); err != nil {
		return nil, fmt.Errorf("campo %q inválido: %w", pieceField, err)
	}
	req.rows, req.closers, err = parseMediaFormset(form)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// parseMediaFormset reads midia-TOTAL_FORMS rows of midia-N-* fields. The
// returned closers must be closed once the rows have been saved.
func parseMediaFormset(form *multipart.Form) ([]dtos.MediaRowInput, []io.Closer, error) {
	total := 0
	if v := formValue(form, mediaPrefix+"-TOTAL_FORMS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, nil, fmt.Errorf("%s-TOTAL_FORMS inválido", mediaPrefix)
		}
		total = n
	}
	if total > maxFormsetRow {
		return nil, nil, fmt.Errorf("envie no máximo %d mídias", maxFormsetRow)
	}

	var closers []io.Closer
	rows := make([]dtos.MediaRowInput, 0, total)
	for i := 0; i < total; i++ {
		prefix := fmt.Sprintf("%s-%d-", mediaPrefix, i)
		row := dtos.MediaRowInput{
			Index:           i,
			Type:            formValue(form, prefix+"tipo"),
			Caption:         formValue(form, prefix+"legenda"),
			DescriptionText: formValue(form, prefix+"texto_descricao"),
			Delete:          checked(formValue(form, prefix+"DELETE")),
		}
		if v := formValue(form, prefix+"id"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				closeAll(closers)
				return nil, nil, fmt.Errorf("%sid inválido", prefix)
			}
			row.ID = id
		}

		var err error
		if row.File, err = openUpload(form, prefix+"arquivo", &closers); err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		if row.AudioDescription, err = openUpload(form, prefix+"audio_descricao", &closers); err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, closers, nil
}

func openUpload(form *multipart.Form, field string, closers *[]io.Closer) (*storage.Upload, error) {
	files := form.File[field]
	if len(files) == 0 || files[0].Filename == "" {
		return nil, nil
	}
	fh := files[0]
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("não foi possível abrir o arquivo %s", fh.Filename)
	}
	*closers = append(*closers, src)
	return &storage.Upload{
		Reader:       src,
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Size:         fh.Size,
	}, nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "sim":
		return true
	}
	return false
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
