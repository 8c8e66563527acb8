package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cromptch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	pictrsTimeout       = 30 * time.Second
	pictrsThumbnailSize = 200
	pictrsContentType   = "image/webp"
)

// pictrsHost talks to a pict-rs image server.
type pictrsHost struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type pictrsUploadResponse struct {
	Msg   string `json:"msg"`
	Files []struct {
		File        string `json:"file"`
		DeleteToken string `json:"delete_token"`
	} `json:"files"`
}

// NewPictrsHost creates a MediaHost backed by pict-rs at baseURL.
func NewPictrsHost(baseURL string, logger *slog.Logger) service.MediaHost {
	return &pictrsHost{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: pictrsTimeout},
		logger:     logger,
	}
}

func (h *pictrsHost) Upload(ctx context.Context, filename string, content io.Reader) (*service.UploadedMedia, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("images[]", filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, errors.Wrap(err, "failed to buffer upload")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/image", &body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "pict-rs upload request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("pict-rs upload returned status %d: %s", resp.StatusCode, detail)
	}

	var uploaded pictrsUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, errors.Wrap(err, "failed to decode pict-rs upload response")
	}
	if uploaded.Msg != "ok" {
		return nil, errors.Errorf("pict-rs upload returned message %q", uploaded.Msg)
	}
	if len(uploaded.Files) != 1 {
		return nil, errors.Errorf("pict-rs upload returned %d files, want 1", len(uploaded.Files))
	}

	file := uploaded.Files[0]
	stem, _, _ := strings.Cut(file.File, ".")
	id, err := uuid.Parse(stem)
	if err != nil {
		return nil, errors.Wrapf(err, "pict-rs returned unexpected file name %q", file.File)
	}

	h.logger.Debug("Image uploaded to pict-rs", slog.String("image_id", id.String()))

	return &service.UploadedMedia{ID: id, DeleteToken: file.DeleteToken}, nil
}

func (h *pictrsHost) Fetch(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	return h.get(ctx, fmt.Sprintf("%s/image/original/%s.webp", h.baseURL, id))
}

func (h *pictrsHost) Thumbnail(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	query := url.Values{}
	query.Set("thumbnail", fmt.Sprint(pictrsThumbnailSize))
	query.Set("src", id.String()+".webp")

	return h.get(ctx, h.baseURL+"/image/process.webp?"+query.Encode())
}

func (h *pictrsHost) get(ctx context.Context, target string) (*service.MediaObject, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "pict-rs request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, service.ErrMediaNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("pict-rs returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pict-rs response")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = pictrsContentType
	}

	return &service.MediaObject{Data: data, ContentType: contentType}, nil
}
