// Package netx fetches case preview images for the CLI.
package netx

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxPreviewBytes bounds a downloaded preview.
const MaxPreviewBytes = 32 << 20

// FetchPreview returns the bytes and content type behind a preview URL.
// Inline "data:" URLs are decoded locally; http(s) URLs, such as presigned
// object URLs, are downloaded.
func FetchPreview(ctx context.Context, client *http.Client, url string) ([]byte, string, error) {
	if strings.HasPrefix(url, "data:") {
		return decodeDataURL(url)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, "", fmt.Errorf("unsupported preview url scheme: %.16q", url)
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, "", fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPreviewBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > MaxPreviewBytes {
		return nil, "", fmt.Errorf("preview larger than %d bytes", MaxPreviewBytes)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// decodeDataURL handles the base64 form "data:<mime>;base64,<payload>".
func decodeDataURL(url string) ([]byte, string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(url, "data:"), ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data url")
	}
	mime, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, "", fmt.Errorf("data url is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data url: %w", err)
	}
	return data, mime, nil
}
