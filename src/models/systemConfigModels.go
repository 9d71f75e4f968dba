package models

// SystemConfigID is the primary key of the single configuration row.
const SystemConfigID = 1

type SystemConfigModel struct {
	ID        int     `json:"id" gorm:"primaryKey"`
	OpenAIKey *string `json:"-" gorm:"column:open_ai_key;type:text"`
}

// HasCaptionKey reports whether an image-description API key is configured.
func (c SystemConfigModel) HasCaptionKey() bool {
	return c.OpenAIKey != nil && *c.OpenAIKey != ""
}
