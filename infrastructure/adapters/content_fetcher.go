package adapters

import (
	"fmt"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"io"
	"net/http"
)

// maxErrorBody caps how much of a failed response is kept for the log.
const maxErrorBody = 4 << 10

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
	OpenStream(req *http.Request) (io.ReadCloser, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(client *http.Client, logger outbound.LoggerPort) ContentFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &contentFetcher{
		logger: logger,
		client: client,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	body, err := c.OpenStream(req)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(req, body)

	payload, err := io.ReadAll(body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	return payload, nil
}

// OpenStream sends the request and hands back the body of a 200 response
// unread. The caller closes it.
func (c *contentFetcher) OpenStream(req *http.Request) (io.ReadCloser, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		defer c.closeBody(req, res.Body)
		bodyPayload, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		c.logger.ErrorWithFields(err, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return nil, fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
	}

	return res.Body, nil
}

func (c *contentFetcher) closeBody(req *http.Request, body io.Closer) {
	err := body.Close()
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
	}
}
