package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SiteConfig holds the titles shown by the administration front-end.
type SiteConfig struct {
	Header     string `env:"SITE_HEADER" envDefault:"Memorial Olhos D'Água - Administração" json:"siteHeader"`
	Title      string `env:"SITE_TITLE" envDefault:"Memorial Olhos D'Água" json:"siteTitle"`
	IndexTitle string `env:"INDEX_TITLE" envDefault:"Gestão do Acervo" json:"indexTitle"`
}

// CaptionConfig configures the image-description endpoint. The API key is not
// part of it: it is stored in the system configuration row.
type CaptionConfig struct {
	Endpoint        string        `env:"CAPTION_ENDPOINT" envDefault:"https://api.openai.com/v1/responses"`
	Model           string        `env:"CAPTION_MODEL" envDefault:"gpt-4.1-mini"`
	MaxOutputTokens int           `env:"CAPTION_MAX_OUTPUT_TOKENS" envDefault:"600"`
	Timeout         time.Duration `env:"CAPTION_TIMEOUT" envDefault:"90s"`
}

type DriveConfig struct {
	CredentialsPath string `env:"GOOGLE_DRIVE_CREDENTIALS_PATH"`
	CredentialsJSON string `env:"GOOGLE_DRIVE_CREDENTIALS_JSON"`
}

// Enabled reports whether Google Drive credentials were provided.
func (d DriveConfig) Enabled() bool {
	return d.CredentialsPath != "" || d.CredentialsJSON != ""
}

type Config struct {
	ServerHost string `env:"SERVER_HOST" envDefault:":8080"`
	Env        string `env:"APP_ENV" envDefault:"development"`

	DBDriver string `env:"DB_DRIVER" envDefault:"postgres"`
	DBDSN    string `env:"DB_DSN,notEmpty"`

	JWTSecret string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	MediaRoot   string   `env:"MEDIA_ROOT" envDefault:"media"`
	MediaURL    string   `env:"MEDIA_URL" envDefault:"/media/"`
	SiteBaseURL string   `env:"SITE_BASE_URL"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:8081,http://127.0.0.1:8081"`

	AdminUsername   string `env:"ADMIN_USERNAME" envDefault:"acervo"`
	AdminPassword   string `env:"ADMIN_PASSWORD"`
	RestrictedGroup string `env:"RESTRICTED_GROUP" envDefault:"Catalogadores"`

	Site    SiteConfig
	Caption CaptionConfig
	Drive   DriveConfig
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	// A missing .env is fine, the variables may come from the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
