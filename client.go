package golove

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultPort is the port the app binds Game Mode to unless something
	// else already holds it.
	DefaultPort = 20010

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// commandPath is the single endpoint the app exposes.
	commandPath = "/command"

	// platformHeader tells the app which application is controlling it.
	platformHeader = "X-platform"
)

// Config is the immutable connection configuration a client was built with.
type Config struct {
	// AppName is shown by the app under "Accepting control from
	// third-party apps" and sent as the X-platform header.
	AppName string
	// Host is the IP or hostname displayed in the app's Game Mode screen.
	Host string
	// Port is the Game Mode HTTP port.
	Port int
}

// Client is a Game Mode LAN API client. It is safe for concurrent use.
type Client struct {
	cfg        Config
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger

	lastMu      sync.RWMutex
	lastCommand Command
}

// Option configures a Client.
type Option func(*Client)

// WithPort sets the Game Mode port shown in the app.
func WithPort(port int) Option {
	return func(c *Client) {
		c.cfg.Port = port
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout. When combined with
// WithHTTPClient, apply WithHTTPClient first.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithLogger configures a structured logger for the client. When set, the
// client logs every outgoing command and decoded reply at debug level.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	client, _ := golove.NewClient("My App", "10.0.0.69", golove.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the app reachable at host. The app name is
// free text; the app displays it to the user while commands are accepted.
func NewClient(appName, host string, opts ...Option) (*Client, error) {
	if appName == "" {
		return nil, ErrEmptyAppName
	}
	if host == "" {
		return nil, ErrEmptyHost
	}

	c := &Client{
		cfg: Config{
			AppName: appName,
			Host:    host,
			Port:    DefaultPort,
		},
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.Port <= 0 || c.cfg.Port > 65535 {
		return nil, invalidArgf("port %d out of range", c.cfg.Port)
	}
	c.endpoint = "http://" + net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port)) + commandPath

	return c, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Endpoint returns the full URL commands are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SendCommand posts a command to the app and decodes the reply. Each call is
// a single attempt; retry policy, if any, belongs to the caller. The command
// is recorded and can be fetched with LastCommand or replayed with Resend.
func (c *Client) SendCommand(ctx context.Context, cmd Command) (*Response, error) {
	if cmd == nil {
		return nil, invalidArgf("command is nil")
	}

	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("golove: marshal command: %w", err)
	}

	c.setLastCommand(cmd)
	c.logger.Debug().
		Str("command", cmd.CommandName()).
		RawJSON("payload", body).
		Msg("sending command")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("golove: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(platformHeader, c.cfg.AppName)

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("command", cmd.CommandName()).
			Msg("request failed")
		return nil, fmt.Errorf("golove: request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("golove: read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", httpResp.StatusCode).
			Str("command", cmd.CommandName()).
			Msg("unexpected HTTP status")
		return nil, fmt.Errorf("golove: unexpected HTTP status %d (body: %s)",
			httpResp.StatusCode, truncatePreview(respBody))
	}

	resp, err := DecodeResponse(respBody)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("command", cmd.CommandName()).
			Dur("duration", time.Since(start)).
			Msg("command rejected")
		return nil, err
	}

	c.logger.Debug().
		Int("code", resp.Code).
		Str("command", cmd.CommandName()).
		Dur("duration", time.Since(start)).
		Msg("command accepted")
	return resp, nil
}

// LastCommand returns the most recently sent command, or nil if nothing has
// been sent yet. Commands are recorded even when the app rejects them.
func (c *Client) LastCommand() Command {
	c.lastMu.RLock()
	defer c.lastMu.RUnlock()
	return c.lastCommand
}

// Resend sends the most recently sent command again.
func (c *Client) Resend(ctx context.Context) (*Response, error) {
	last := c.LastCommand()
	if last == nil {
		return nil, ErrNoLastCommand
	}
	return c.SendCommand(ctx, last)
}

func (c *Client) setLastCommand(cmd Command) {
	c.lastMu.Lock()
	c.lastCommand = cmd
	c.lastMu.Unlock()
}
