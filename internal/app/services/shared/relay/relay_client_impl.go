package relay

import (
	"bytes"
	"clinic-site/internal/app/contracts"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/dto/responses"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrRelayRejected marks a delivered request that the relay answered with a non-2xx status.
var ErrRelayRejected = errors.New("mail relay rejected the message")

type relayClient struct {
	Url        string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewRelayClient posts form submissions to the mail relay endpoint at url.
func NewRelayClient(url string, timeout time.Duration, logger *zap.Logger) contracts.MailRelay {
	return &relayClient{
		Url:        url,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (c *relayClient) Send(ctx context.Context, payload *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("relayClient.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.Url, bytes.NewReader(body))
	if err != nil {
		c.Log.Error("relayClient.Send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("relayClient.Send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusOK && resp.StatusCode < 300 {
		c.Log.Info("relayClient.Send succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var outcome responses.SendEmailResponse
	if err := json.Unmarshal(bodyBytes, &outcome); err != nil {
		c.Log.Debug("relayClient.Send error body is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	relayErr := fmt.Errorf("%w: status %d", ErrRelayRejected, resp.StatusCode)
	c.Log.Error("relayClient.Send relay error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String(constvars.LoggingErrorMessageKey, outcome.Error),
	)
	return exceptions.ErrMailRelay(relayErr, outcome.Error)
}

// FailureMessage is the notification shown for a failed submission: the relay's
// own error text when it rejected the message, fallback when it gave none, and
// generic when the relay could not be reached at all.
func FailureMessage(err error, fallback, generic string) string {
	if !errors.Is(err, ErrRelayRejected) {
		return generic
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return fallback
}
