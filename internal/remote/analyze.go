package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/rihla/internal/domain"
)

// AnalyzeImage uploads the asset as a multipart form with the user's
// identity and locale and returns the analysis payload. Uploads are
// never retried.
func (c *httpClient) AnalyzeImage(ctx context.Context, req AnalyzeRequest) (*domain.AnalysisResult, error) {
	start := time.Now()

	timeoutMs := c.cfg.OpTimeout(OpAnalyze)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body, contentType, err := buildAnalyzeForm(req)
	if err != nil {
		return nil, c.finish(OpAnalyze, start, err)
	}

	url := c.cfg.BaseURL + "/api/analyze"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, c.finish(OpAnalyze, start, fmt.Errorf("creating request: %w", err))
	}
	httpReq.Header.Set("Content-Type", contentType)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, c.finish(OpAnalyze, start, c.mapTransport(ctx, err))
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.finish(OpAnalyze, start, fmt.Errorf("reading response: %w", err))
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, c.finish(OpAnalyze, start,
			fmt.Errorf("trip service returned status %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, c.finish(OpAnalyze, start, fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	if !result.Success {
		return nil, c.finish(OpAnalyze, start, Reject(result.Message))
	}

	c.finish(OpAnalyze, start, nil)
	return &result, nil
}

// buildAnalyzeForm assembles the multipart body: the image part plus the
// user_id and language fields.
func buildAnalyzeForm(req AnalyzeRequest) (io.Reader, string, error) {
	file, err := os.Open(req.Asset.URI)
	if err != nil {
		return nil, "", fmt.Errorf("opening asset: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fileName := req.Asset.FileName
	if fileName == "" {
		fileName = filepath.Base(req.Asset.URI)
	}

	part, err := w.CreatePart(imagePartHeader(fileName, req.Asset.MIMEType))
	if err != nil {
		return nil, "", fmt.Errorf("creating image part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("copying asset: %w", err)
	}

	if err := w.WriteField("user_id", req.UserID); err != nil {
		return nil, "", fmt.Errorf("writing user_id field: %w", err)
	}
	if err := w.WriteField("language", req.Language); err != nil {
		return nil, "", fmt.Errorf("writing language field: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// imagePartHeader builds the image part header with the asset's MIME
// type, falling back to octet-stream when the source did not report one.
func imagePartHeader(fileName, mimeType string) textproto.MIMEHeader {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="image"; filename=%q`, fileName))
	h.Set("Content-Type", mimeType)
	return h
}
