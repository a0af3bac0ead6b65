package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/kdduha/pdf-converter/internal/models"
)

const (
	ConvertPath     = "/convert"
	RequestIDHeader = "X-Request-Id"
)

type requestIDKey struct{}

// WithRequestID tags ctx so the next Convert call sends id instead of a fresh one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New builds a client for the conversion service rooted at baseURL.
// A nil httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// Resolve turns a server-provided, possibly relative, href into an absolute URL.
func (c *Client) Resolve(href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href: %w", err)
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

// Convert uploads file and asks for format. The response body is decoded as JSON
// whatever the status; non-2xx answers come back as *StatusError.
func (c *Client) Convert(ctx context.Context, file File, format string) (*models.ConvertResponse, error) {
	endpoint, err := c.Resolve(ConvertPath)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeUpload(file, format)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e models.ErrorResponse
		if err := sonic.Unmarshal(raw, &e); err != nil {
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	var result models.ConvertResponse
	if err := sonic.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.DownloadURL == "" {
		return nil, fmt.Errorf("%w: missing download_url", ErrMalformedResponse)
	}
	return &result, nil
}

// Download streams the artifact at href into w and returns the number of bytes written.
func (c *Client) Download(ctx context.Context, href string, w io.Writer) (int64, error) {
	target, err := c.Resolve(href)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, statusErrorf(resp.StatusCode, "download failed: %s", strings.TrimSpace(string(b)))
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("copy body: %w", err)
	}
	return n, nil
}

func encodeUpload(file File, format string) (io.Reader, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", file.Name(), err)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer src.Close()

		part, err := mw.CreateFormFile("file", file.Name())
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(fmt.Errorf("copy %s: %w", file.Name(), err))
			return
		}
		if err := mw.WriteField("format", format); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	return pr, mw.FormDataContentType(), nil
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
