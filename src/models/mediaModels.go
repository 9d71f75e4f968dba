package models

type MediaModel struct {
	ID               int       `json:"id" gorm:"primaryKey;autoIncrement"`
	PieceID          int       `json:"pieceId" gorm:"column:piece_id;index;not null"`
	Type             MediaType `json:"type" gorm:"column:type;type:varchar(1);not null"`
	File             *string   `json:"file" gorm:"column:file;type:varchar(500)"`
	UploadDate       Date      `json:"uploadDate" gorm:"column:upload_date"`
	DescriptionText  string    `json:"descriptionText" gorm:"column:description_text;type:text;not null;default:''"`
	AudioDescription *string   `json:"audioDescription" gorm:"column:audio_description;type:varchar(500)"`
	QRCode           *string   `json:"qrCode" gorm:"column:qr_code;type:varchar(500)"`
	Caption          *string   `json:"caption" gorm:"column:caption;type:varchar(120)"`
}

// HasFile reports whether a media file is attached.
func (m MediaModel) HasFile() bool {
	return m.File != nil && *m.File != ""
}

// StoredFiles lists every stored file path attached to the media.
func (m MediaModel) StoredFiles() []string {
	var paths []string
	for _, p := range []*string{m.File, m.AudioDescription, m.QRCode} {
		if p != nil && *p != "" {
			paths = append(paths, *p)
		}
	}
	return paths
}
