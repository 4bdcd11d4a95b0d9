package sensor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/sportai/internal/posture"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// WebsocketSensor receives frames from a live pose estimator over a
// websocket, one JSON frame per message.
type WebsocketSensor struct {
	url         string
	header      http.Header
	dialer      *websocket.Dialer
	dialRetries uint64
}

const defaultDialRetries = 3

func NewWebsocketSensor(url string, header http.Header) *WebsocketSensor {
	return &WebsocketSensor{
		url:    url,
		header: header,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		dialRetries: defaultDialRetries,
	}
}

// WithDialRetries sets how many times a refused connection is retried.
func (s *WebsocketSensor) WithDialRetries(retries uint64) *WebsocketSensor {
	s.dialRetries = retries
	return s
}

// Open retries with exponential backoff while the estimator is unreachable.
// A rejected handshake is not retried.
func (s *WebsocketSensor) Open(ctx context.Context) (posture.FrameStream, error) {
	var conn *websocket.Conn
	dial := func() error {
		c, resp, err := s.dialer.DialContext(ctx, s.url, s.header)
		if err != nil {
			if resp != nil {
				return backoff.Permanent(fmt.Errorf("dial %s [%s]: %w", s.url, resp.Status, err))
			}
			return fmt.Errorf("dial %s: %w", s.url, err)
		}
		conn = c
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 200 * time.Millisecond
	expBackoff.MaxInterval = 2 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, s.dialRetries), ctx)

	onRetry := func(err error, next time.Duration) {
		log.WithField("component", "ws-sensor").Warnf("%s, retrying in %s", err, next)
	}
	if err := backoff.RetryNotify(dial, policy, onRetry); err != nil {
		return nil, err
	}

	log.WithField("component", "ws-sensor").Debugf("connected to pose estimator at %s", s.url)
	return &websocketStream{conn: conn}, nil
}

type websocketStream struct {
	conn *websocket.Conn

	closeOnce sync.Once
	closeErr  error
}

// Next blocks on the connection; Close unblocks it. The estimator closing
// the connection normally ends the stream with io.EOF.
func (s *websocketStream) Next(ctx context.Context) (posture.Frame, error) {
	for {
		if err := ctx.Err(); err != nil {
			return posture.Frame{}, err
		}

		msgType, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return posture.Frame{}, io.EOF
			}
			return posture.Frame{}, fmt.Errorf("read frame message: %w", err)
		}
		if msgType != websocket.TextMessage && msgType != websocket.BinaryMessage {
			continue
		}

		return DecodeFrame(msg)
	}
}

func (s *websocketStream) Close() error {
	s.closeOnce.Do(func() {
		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "monitor stopped"),
			time.Now().Add(time.Second),
		)
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
