package facerec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go-hrms/internal/shared/apperror"
)

// ErrNoFace is returned when the extraction service finds no face in the
// submitted image.
var ErrNoFace = apperror.New(
	apperror.CodeInvalidInput,
	"No face detected in the submitted image",
	http.StatusUnprocessableEntity,
)

// Extractor turns an image into a fixed-length embedding vector. The
// actual model runs in an external inference service.
//
//go:generate mockgen -source=client.go -destination=mock/extractor_mock.go -package=mock
type Extractor interface {
	Extract(ctx context.Context, image []byte) ([]float64, error)
}

type httpExtractor struct {
	baseURL string
	client  *http.Client
}

func NewHTTPExtractor(baseURL string) Extractor {
	return &httpExtractor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type extractResponse struct {
	Embedding []float64 `json:"embedding"`
}

func (e *httpExtractor) Extract(ctx context.Context, image []byte) ([]float64, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "face.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnprocessableEntity, http.StatusNotFound:
		return nil, ErrNoFace
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("face api returned %d: %s", resp.StatusCode, raw)
	}

	var decoded extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if len(decoded.Embedding) == 0 {
		return nil, ErrNoFace
	}

	return decoded.Embedding, nil
}
