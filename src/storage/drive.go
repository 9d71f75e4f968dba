package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"github.com/ACORDE/memorial-acervo/src/config"
	"github.com/ACORDE/memorial-acervo/src/logger"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const driveFolderMimeType = "application/vnd.google-apps.folder"

var driveIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`),
}

var driveHostPattern = regexp.MustCompile(`drive\.google\.com`)

// RemoteFetcher downloads a file referenced by a share link.
type RemoteFetcher interface {
	Enabled() bool
	Fetch(ctx context.Context, link string) (io.ReadCloser, string, error)
}

// DriveFetcher downloads files from Google Drive with a service account.
// The Drive client is created on first use.
type DriveFetcher struct {
	cfg config.DriveConfig
	log *logger.Logger

	once    sync.Once
	service *drive.Service
	initErr error
}

func NewDriveFetcher(cfg config.DriveConfig, log *logger.Logger) *DriveFetcher {
	return &DriveFetcher{cfg: cfg, log: log}
}

func (d *DriveFetcher) Enabled() bool {
	return d.cfg.Enabled()
}

// client builds the Drive service once. Setup is not tied to any request, so a
// cancelled first request cannot leave the fetcher unusable.
func (d *DriveFetcher) client() (*drive.Service, error) {
	d.once.Do(func() {
		ctx := context.Background()
		credsJSON := []byte(d.cfg.CredentialsJSON)
		if d.cfg.CredentialsPath != "" {
			b, err := os.ReadFile(d.cfg.CredentialsPath)
			if err != nil {
				d.initErr = fmt.Errorf("erro lendo arquivo de credenciais: %w", err)
				return
			}
			credsJSON = b
		}
		if len(credsJSON) == 0 {
			d.initErr = fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH ou GOOGLE_DRIVE_CREDENTIALS_JSON deve estar configurado")
			return
		}
		creds, err := google.CredentialsFromJSON(ctx, credsJSON, drive.DriveReadonlyScope)
		if err != nil {
			d.initErr = fmt.Errorf("erro carregando credenciais: %w", err)
			return
		}
		d.service, d.initErr = drive.NewService(ctx, option.WithCredentials(creds))
		if d.initErr == nil {
			d.log.Info("google drive client ready")
		}
	})
	return d.service, d.initErr
}

// Fetch downloads the file behind a Drive link and returns its body and name.
func (d *DriveFetcher) Fetch(ctx context.Context, link string) (io.ReadCloser, string, error) {
	fileID, err := ExtractDriveFileID(link)
	if err != nil {
		return nil, "", err
	}
	service, err := d.client()
	if err != nil {
		return nil, "", err
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Context(ctx).Do()
	if err != nil {
		return nil, "", fmt.Errorf("erro obtendo informações do arquivo: %w", err)
	}
	if file.MimeType == driveFolderMimeType {
		return nil, "", fmt.Errorf("pastas do Google Drive não podem ser baixadas diretamente")
	}

	d.log.Info("downloading from google drive", "file_id", fileID, "name", file.Name, "size", file.Size)
	resp, err := service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, "", fmt.Errorf("erro baixando arquivo: %w", err)
	}
	return resp.Body, file.Name, nil
}

// ExtractDriveFileID pulls the file id out of the usual Drive link shapes.
func ExtractDriveFileID(link string) (string, error) {
	for _, re := range driveIDPatterns {
		if m := re.FindStringSubmatch(link); len(m) > 1 {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("não foi possível extrair o ID do arquivo da URL: %s", link)
}

func IsDriveURL(link string) bool {
	return driveHostPattern.MatchString(link)
}
