// ABOUTME: HTTP client for the Tracsis backend API
// ABOUTME: Owns the session token pair and returns uniform result envelopes

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Tracsis API endpoint.
const DefaultBaseURL = "https://tracsisapi.apsissolutions.com/api/v1"

// Client is the API client for the Tracsis backend. It owns the process-local
// session: default headers plus the access/refresh token pair. The token pair
// is the sole authentication witness and is never persisted by the client.
type Client struct {
	baseURL    string
	httpClient *http.Client

	accessToken  string
	refreshToken string

	// debugf, when set, receives request and token diagnostics. It must not
	// write to stdout while the TUI is active.
	debugf func(format string, args ...any)
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetDebug installs a diagnostics sink. Pass nil to disable.
func (c *Client) SetDebug(fn func(format string, args ...any)) {
	c.debugf = fn
}

func (c *Client) debug(format string, args ...any) {
	if c.debugf != nil {
		c.debugf(format, args...)
	}
}

// Result is the uniform envelope returned by every endpoint method. Endpoint
// methods never return Go errors across the client boundary; transport and
// protocol failures are converted into an envelope with Error set.
type Result struct {
	Error      bool            `json:"error"`
	Message    string          `json:"message,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	RawBody    string          `json:"raw_response,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// DecodeData unmarshals the envelope payload into v.
func (r Result) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("envelope has no data")
	}
	return json.Unmarshal(r.Data, v)
}

// LoginData is the payload of a successful /auth/login response.
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       int    `json:"user_id"`
	UserCode     string `json:"user_code"`
	UserName     string `json:"user_name"`
}

// Task is a server-owned task record. The client treats it as opaque display
// data; nothing here is validated or mutated locally.
type Task struct {
	ID            int         `json:"hidden_task_id"`
	Title         string      `json:"task_title"`
	ProjectName   string      `json:"project_name"`
	DeliveryDate  string      `json:"formatted_date"`
	EstimatedHour json.Number `json:"estimated_hour"`
	ModuleName    string      `json:"module_name"`
}

// TaskGrid is the data payload of a task listing response.
type TaskGrid struct {
	Items []Task `json:"items"`
}

// Project is one entry of the user's project list.
type Project struct {
	ID   int    `json:"hidden_project_id"`
	Name string `json:"project_name"`
}

// ProjectGrid is the data payload of a project listing response.
type ProjectGrid struct {
	Items []Project `json:"items"`
}

// workEntry is a single unit of logged work. Exactly one is sent per
// LogTaskWork call.
type workEntry struct {
	Key        int     `json:"key"`
	WorkTitle  string  `json:"work_title"`
	WorkDate   string  `json:"work_date"`
	WorkType   string  `json:"work_type"`
	LogHour    float64 `json:"log_hour"`
	LogDetails *string `json:"log_details"`
}

// gridRequest is the body of a master-grid/grid-data query. The slug selects
// the logical view on the server side.
type gridRequest struct {
	Slug       string         `json:"slug"`
	Extra      map[string]any `json:"extra"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	SearchKey  map[string]any `json:"search_key"`
	SearchData []any          `json:"search_data"`
}

// Numeric task status codes used by the log endpoint.
const (
	taskStatusCompleted  = 3
	taskStatusInProgress = 4
)

// setTokens stores the token pair. The Authorization header is derived from
// the access token on every request from here on.
func (c *Client) setTokens(accessToken, refreshToken string) {
	c.accessToken = accessToken
	c.refreshToken = refreshToken
}

// IsAuthenticated reports whether a token pair is held. It performs no I/O
// beyond the optional debug sink.
func (c *Client) IsAuthenticated() bool {
	c.debug("access token: %q", c.accessToken)
	c.debug("refresh token: %q", c.refreshToken)
	return c.accessToken != "" && c.refreshToken != ""
}

// notAuthenticated is the envelope returned when a gated call is made before
// login. No network round trip happens.
func notAuthenticated() Result {
	return Result{
		Error:      true,
		Message:    "Not authenticated. Please login first.",
		StatusCode: http.StatusUnauthorized,
	}
}

// post issues a JSON POST to path and decodes the response envelope. All
// failure modes are folded into the envelope: connection errors carry a
// "Request failed" message, non-2xx statuses carry the status code, and
// undecodable bodies are preserved verbatim in RawBody.
func (c *Client) post(ctx context.Context, path string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Error: true, Message: fmt.Sprintf("Request failed: %v", err)}
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{Error: true, Message: fmt.Sprintf("Request failed: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	c.debug("POST %s %s", url, body)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Error: true, Message: fmt.Sprintf("Request failed: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{
			Error:      true,
			Message:    fmt.Sprintf("Request failed: %v", err),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Error:      true,
			Message:    fmt.Sprintf("Request failed: server returned status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{
			Error:      true,
			Message:    "Invalid JSON response from server",
			StatusCode: resp.StatusCode,
			RawBody:    string(raw),
		}
	}
	return result
}

// Login posts credentials to the auth endpoint. When the response carries
// both tokens the session is updated before the envelope is returned, so a
// successful Login leaves the client authenticated.
func (c *Client) Login(ctx context.Context, user, password string) Result {
	result := c.post(ctx, "/auth/login", map[string]string{
		"user":     user,
		"password": password,
	})
	if result.Error {
		return result
	}

	var data LoginData
	if err := result.DecodeData(&data); err == nil {
		if data.AccessToken != "" && data.RefreshToken != "" {
			c.setTokens(data.AccessToken, data.RefreshToken)
		}
	}
	return result
}

// GetTaskList fetches the caller's task view filtered to userID. Requires a
// prior successful login; otherwise a 401-shaped envelope is returned without
// touching the network.
func (c *Client) GetTaskList(ctx context.Context, userID, page, perPage int) Result {
	if !c.IsAuthenticated() {
		return notAuthenticated()
	}
	return c.post(ctx, "/master-grid/grid-data", gridRequest{
		Slug: "pts_my_tasks",
		Extra: map[string]any{
			"extra_condition": fmt.Sprintf("pts_tasks.assign_user_id = %d", userID),
		},
		Page:       page,
		PerPage:    perPage,
		SearchKey:  map[string]any{},
		SearchData: []any{},
	})
}

// GetTaskLogs fetches the work-log view. The listing is server-side scoped to
// the logged-in user and is not filtered by task id. Same authentication
// precondition as GetTaskList.
func (c *Client) GetTaskLogs(ctx context.Context, taskID, page, perPage int) Result {
	if !c.IsAuthenticated() {
		return notAuthenticated()
	}
	return c.post(ctx, "/master-grid/grid-data", gridRequest{
		Slug:       "pts_my_logs",
		Extra:      map[string]any{},
		Page:       page,
		PerPage:    perPage,
		SearchKey:  map[string]any{},
		SearchData: []any{},
	})
}

// LogTaskWork sends one work entry for a task. Status "c" marks the task
// completed, anything else leaves it in progress.
//
// Unlike the listing calls there is no client-side authentication gate here;
// an unauthenticated call goes to the server and comes back as a 401
// envelope. Kept as-is, see the design notes.
func (c *Client) LogTaskWork(ctx context.Context, taskID int, status, workTitle, workDate string, logHour float64) Result {
	taskStatus := taskStatusInProgress
	if status == "c" {
		taskStatus = taskStatusCompleted
	}

	return c.post(ctx, "/pts/task/log", map[string]any{
		"role_id":     2,
		"task_status": taskStatus,
		"task_id":     taskID,
		"work": []workEntry{
			{
				Key:       0,
				WorkTitle: workTitle,
				WorkDate:  workDate,
				WorkType:  "Development",
				LogHour:   logHour,
			},
		},
	})
}

// GetMyProjectList fetches the projects the user can create tasks under.
func (c *Client) GetMyProjectList(ctx context.Context) Result {
	return c.post(ctx, "/master-grid/grid-data", gridRequest{
		Slug:       "pts_my_projects",
		Extra:      map[string]any{},
		Page:       1,
		PerPage:    100,
		SearchKey:  map[string]any{},
		SearchData: []any{},
	})
}

// CreateTask creates a task assigned to userID under the given project.
func (c *Client) CreateTask(ctx context.Context, title string, userID int, deliveryDate string, estimatedHour float64, projectID int) Result {
	return c.post(ctx, "/pts/task/store", map[string]any{
		"task_title":     title,
		"assign_user_id": userID,
		"delivery_date":  deliveryDate,
		"estimated_hour": estimatedHour,
		"project_id":     projectID,
	})
}
