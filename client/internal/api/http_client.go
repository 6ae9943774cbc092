package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type (
	Params struct {
		Method      string
		Path        string
		Body        interface{}
		Response    interface{}
		QueryParams map[string]string
		Headers     map[string]string
	}

	Client interface {
		Do(ctx context.Context, param Params) error
	}

	// StatusError is returned for non 2xx replies. The reply body has still
	// been decoded into Params.Response when it was JSON.
	StatusError struct {
		StatusCode int
		Message    string
	}

	client struct {
		httpClient *http.Client
		baseUrl    string
		accessKey  string
	}
)

const (
	accessKeyHeader = "X-Access-Token"
)

func NewClient(host, accessKey string) Client {
	if !strings.HasSuffix(host, "/") {
		host += "/"
	}
	if !strings.HasSuffix(host, "v1/") {
		host += "v1/"
	}

	return &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseUrl:    host,
		accessKey:  accessKey,
	}
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server replied %d", e.StatusCode)
	}
	return e.Message
}

func (c client) Do(ctx context.Context, param Params) error {
	requestUrl, err := url.Parse(c.baseUrl + param.Path)
	if err != nil {
		return err
	}

	if len(param.QueryParams) > 0 {
		values := url.Values{}
		for k, v := range param.QueryParams {
			values.Add(k, v)
		}
		requestUrl.RawQuery = values.Encode()
	}

	var body io.Reader
	if param.Body != nil {
		bodyBin, err := json.Marshal(param.Body)
		if err != nil {
			return err
		}
		body = bytes.NewReader(bodyBin)
	}

	req, err := http.NewRequestWithContext(ctx, param.Method, requestUrl.String(), body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range param.Headers {
		req.Header.Set(k, v)
	}

	if c.accessKey != "" {
		req.Header.Set(accessKeyHeader, c.accessKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if param.Response != nil && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, param.Response); err != nil && resp.StatusCode < 300 {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.parseError(resp.StatusCode, responseBody)
	}
	return nil
}

func (c client) parseError(code int, b []byte) error {
	var errorResponse struct {
		Message string
	}
	_ = json.Unmarshal(b, &errorResponse)
	return &StatusError{StatusCode: code, Message: errorResponse.Message}
}
