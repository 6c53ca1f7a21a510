package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"playroom/internal/models"
	"playroom/internal/shared"
)

const defaultBaseURL = "http://localhost:8080"

// Service defines the playlist service surface consumed by the TUI and CLI.
type Service interface {
	// ListPlaylists retrieves all playlists visible to the user.
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)

	// CreatePlaylist creates a playlist and returns the server's record.
	CreatePlaylist(ctx context.Context, name string) (*models.Playlist, error)

	// ListSongs retrieves the songs of one playlist.
	ListSongs(ctx context.Context, listID string) ([]models.Song, error)

	// CreateSong adds a song to a playlist. Artist and album may be empty;
	// they are still sent on the wire, which is how an empty field is
	// distinguished from one the user never submitted.
	CreateSong(ctx context.Context, listID, title, artist, album string) (*models.Song, error)

	// ListUsers retrieves the users a playlist is shared with.
	ListUsers(ctx context.Context, listID string) ([]models.PlaylistUser, error)

	// ShareUser grants a user access to a playlist by email.
	ShareUser(ctx context.Context, listID, email string) (*models.PlaylistUser, error)
}

// Error is a non-2xx response from the playlist service.
type Error struct {
	Status    int
	Message   string // server-provided message, may be empty
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("service error (status %d)", e.Status)
}

func (e *Error) Unwrap() error {
	return shared.ErrAPIRequest
}

// Client is the HTTP implementation of [Service]. Safe for concurrent use
// once constructed.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
	token      string
}

var _ Service = (*Client)(nil)

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom [http.Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithRateLimit enables a client-side request limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a playlist service client. An empty baseURL falls back to
// http://localhost:8080.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = shared.NewLogger(nil)
	}

	if c.token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
		c.httpClient = &http.Client{
			Timeout:   c.httpClient.Timeout,
			Transport: &oauth2.Transport{Source: src, Base: c.httpClient.Transport},
		}
	}

	return c
}

// do performs one request against the service. Form non-nil means a
// form-encoded POST; otherwise a GET. The JSON response body is decoded into
// result when result is non-nil.
func (c *Client) do(ctx context.Context, method, path string, form url.Values, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	requestID := shared.GenerateID()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("service request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		svcErr := &Error{Status: resp.StatusCode, RequestID: requestID}

		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			svcErr.Message = payload.Message
		}

		c.logger.Warn("service error", "status", resp.StatusCode, "path", path, "request_id", requestID)
		return svcErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListPlaylists retrieves all playlists visible to the user, in server order.
func (c *Client) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := c.do(ctx, http.MethodGet, "/api/playlists", nil, &playlists); err != nil {
		return nil, err
	}

	for _, p := range playlists {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	return playlists, nil
}

// CreatePlaylist creates a playlist named name and returns the server's
// record, so the caller renders the server-assigned identifier rather than
// anything chosen client-side.
func (c *Client) CreatePlaylist(ctx context.Context, name string) (*models.Playlist, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	var playlist models.Playlist
	form := url.Values{"name": {name}}
	if err := c.do(ctx, http.MethodPost, "/api/playlists", form, &playlist); err != nil {
		return nil, err
	}
	if err := playlist.Validate(); err != nil {
		return nil, err
	}

	return &playlist, nil
}

// ListSongs retrieves the songs of the playlist identified by listID.
func (c *Client) ListSongs(ctx context.Context, listID string) ([]models.Song, error) {
	if listID == "" {
		return nil, shared.ErrNoSelection
	}

	var songs []models.Song
	path := "/api/songs?list=" + url.QueryEscape(listID)
	if err := c.do(ctx, http.MethodGet, path, nil, &songs); err != nil {
		return nil, err
	}

	for _, s := range songs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	return songs, nil
}

// CreateSong adds a song to the playlist identified by listID.
func (c *Client) CreateSong(ctx context.Context, listID, title, artist, album string) (*models.Song, error) {
	if listID == "" {
		return nil, shared.ErrNoSelection
	}
	if title == "" {
		return nil, fmt.Errorf("%w: song title", shared.ErrMissingArgument)
	}

	var song models.Song
	form := url.Values{
		"list":   {listID},
		"title":  {title},
		"artist": {artist},
		"album":  {album},
	}
	if err := c.do(ctx, http.MethodPost, "/api/songs", form, &song); err != nil {
		return nil, err
	}
	if err := song.Validate(); err != nil {
		return nil, err
	}

	return &song, nil
}

// ListUsers retrieves the users the playlist identified by listID is shared with.
func (c *Client) ListUsers(ctx context.Context, listID string) ([]models.PlaylistUser, error) {
	if listID == "" {
		return nil, shared.ErrNoSelection
	}

	var users []models.PlaylistUser
	path := "/api/users?list=" + url.QueryEscape(listID)
	if err := c.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}

	for _, u := range users {
		if err := u.Validate(); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// ShareUser grants the user identified by email access to the playlist
// identified by listID. A failed share surfaces the server's message through
// the returned [*Error] when one was provided.
func (c *Client) ShareUser(ctx context.Context, listID, email string) (*models.PlaylistUser, error) {
	if listID == "" {
		return nil, shared.ErrNoSelection
	}
	if email == "" {
		return nil, fmt.Errorf("%w: user email", shared.ErrMissingArgument)
	}

	var user models.PlaylistUser
	form := url.Values{"list": {listID}, "email": {email}}
	if err := c.do(ctx, http.MethodPost, "/api/users", form, &user); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	return &user, nil
}
