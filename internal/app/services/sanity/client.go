package sanity

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client reads documents from one dataset of the content store through its HTTP query API.
type Client struct {
	BaseUrl    string
	Dataset    string
	APIVersion string
	Token      string
	HTTPClient *http.Client
	Log        *zap.Logger
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
}

func NewClient(cfg config.AppSanity, logger *zap.Logger) (*Client, error) {
	if cfg.ProjectID == "" || cfg.Dataset == "" {
		return nil, exceptions.ErrSanityBadConfig(errors.New("project id and dataset are required"))
	}

	hostFormat := constvars.SanityAPIHostFormat
	if cfg.UseCDN && cfg.Token == "" {
		hostFormat = constvars.SanityAPICDNHostFormat
	}

	return &Client{
		BaseUrl:    fmt.Sprintf(hostFormat, cfg.ProjectID),
		Dataset:    cfg.Dataset,
		APIVersion: strings.TrimPrefix(cfg.APIVersion, "v"),
		Token:      cfg.Token,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutInSeconds) * time.Second},
		Log:        logger,
	}, nil
}

// Fetch runs query with params bound as $name variables and decodes the result into out.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("sanityClient.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryStringKey, query),
	)

	documentType := documentTypeOf(query)

	endpoint, err := c.buildURL(query, params)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("sanityClient.Fetch error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if c.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("sanityClient.Fetch error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrSanityDecodeResponse(err, documentType)
	}

	if resp.StatusCode != constvars.StatusOK {
		var outcome errorResponse
		if err := json.Unmarshal(bodyBytes, &outcome); err != nil {
			c.Log.Debug("sanityClient.Fetch error body is not JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		queryErr := fmt.Errorf("status %d: %s %s", resp.StatusCode, outcome.Error.Type, outcome.Error.Description)
		c.Log.Error("sanityClient.Fetch content store error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingDocumentTypeKey, documentType),
			zap.Error(queryErr),
		)
		return exceptions.ErrSanityQuery(queryErr, documentType)
	}

	var envelope queryResponse
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		c.Log.Error("sanityClient.Fetch error decoding envelope",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSanityDecodeResponse(err, documentType)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		c.Log.Error("sanityClient.Fetch error decoding result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentTypeKey, documentType),
			zap.Error(err),
		)
		return exceptions.ErrSanityDecodeResponse(err, documentType)
	}

	c.Log.Info("sanityClient.Fetch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentTypeKey, documentType),
	)
	return nil
}

func (c *Client) buildURL(query string, params map[string]interface{}) (string, error) {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		values.Set("$"+name, string(encoded))
	}

	path := fmt.Sprintf(constvars.SanityQueryPathFormat, c.APIVersion, c.Dataset)
	return c.BaseUrl + path + "?" + values.Encode(), nil
}

// documentTypeOf pulls the _type literal out of a query for logging and errors.
func documentTypeOf(query string) string {
	const marker = `_type == "`
	start := strings.Index(query, marker)
	if start < 0 {
		return "unknown"
	}
	rest := query[start+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return "unknown"
	}
	return rest[:end]
}
