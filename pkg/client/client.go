// Package client is a typed wrapper around the crewdeck REST API, used by
// the export CLI and by anything else that talks to a running server.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError carries the HTTP status and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs a previously obtained bearer token, e.g. one cached
// between CLI invocations.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)

	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = strings.TrimSpace(string(data))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(data, out)
}

// Login authenticates and stores the returned bearer token for every
// subsequent call.
func (c *Client) Login(username, password string) (*LoginResponse, error) {
	var resp LoginResponse

	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)

	if err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &resp, nil
}

func (c *Client) Me() (*User, error) {
	var user User
	if err := c.do(http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers() ([]User, error) {
	var users []User
	if err := c.do(http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(req CreateUserRequest) (*User, error) {
	var user User
	if err := c.do(http.MethodPost, "/api/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListOperatives() ([]Operative, error) {
	var operatives []Operative
	if err := c.do(http.MethodGet, "/api/operatives", nil, &operatives); err != nil {
		return nil, err
	}
	return operatives, nil
}

func (c *Client) GetOperative(id uint) (*Operative, error) {
	var operative Operative
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/operatives/%d", id), nil, &operative); err != nil {
		return nil, err
	}
	return &operative, nil
}

func (c *Client) CreateOperative(req OperativeRequest) (*Operative, error) {
	var operative Operative
	if err := c.do(http.MethodPost, "/api/operatives", req, &operative); err != nil {
		return nil, err
	}
	return &operative, nil
}

func (c *Client) UpdateOperative(id uint, req OperativeRequest) (*Operative, error) {
	var operative Operative
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/operatives/%d", id), req, &operative); err != nil {
		return nil, err
	}
	return &operative, nil
}

func (c *Client) DeleteOperative(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/operatives/%d", id), nil, nil)
}

func (c *Client) ListJobs() ([]Job, error) {
	var jobs []Job
	if err := c.do(http.MethodGet, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJob(id uint) (*JobDetail, error) {
	var job JobDetail
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(req JobRequest) (*Job, error) {
	var job Job
	if err := c.do(http.MethodPost, "/api/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(id uint, req JobRequest) (*Job, error) {
	var job Job
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil)
}

func (c *Client) AddJobUpdate(jobID uint, text string) (*JobUpdate, error) {
	var update JobUpdate
	err := c.do(http.MethodPost, fmt.Sprintf("/api/jobs/%d/updates", jobID), map[string]string{
		"update_text": text,
	}, &update)
	if err != nil {
		return nil, err
	}
	return &update, nil
}

func (c *Client) ListRiskAssessments() ([]RiskAssessment, error) {
	var assessments []RiskAssessment
	if err := c.do(http.MethodGet, "/api/risk-assessments", nil, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (c *Client) ListJobRiskAssessments(jobID uint) ([]RiskAssessment, error) {
	var assessments []RiskAssessment
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/jobs/%d/risk-assessments", jobID), nil, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (c *Client) CreateRiskAssessment(req RiskAssessmentRequest) (*RiskAssessment, error) {
	var assessment RiskAssessment
	if err := c.do(http.MethodPost, "/api/risk-assessments", req, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *Client) UpdateRiskAssessment(id uint, req RiskAssessmentRequest) (*RiskAssessment, error) {
	var assessment RiskAssessment
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/risk-assessments/%d", id), req, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *Client) DeleteRiskAssessment(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/risk-assessments/%d", id), nil, nil)
}

func (c *Client) ListMethodStatements() ([]MethodStatement, error) {
	var statements []MethodStatement
	if err := c.do(http.MethodGet, "/api/method-statements", nil, &statements); err != nil {
		return nil, err
	}
	return statements, nil
}

func (c *Client) ListJobMethodStatements(jobID uint) ([]MethodStatement, error) {
	var statements []MethodStatement
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/jobs/%d/method-statements", jobID), nil, &statements); err != nil {
		return nil, err
	}
	return statements, nil
}

func (c *Client) CreateMethodStatement(req MethodStatementRequest) (*MethodStatement, error) {
	var statement MethodStatement
	if err := c.do(http.MethodPost, "/api/method-statements", req, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}

func (c *Client) UpdateMethodStatement(id uint, req MethodStatementRequest) (*MethodStatement, error) {
	var statement MethodStatement
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/method-statements/%d", id), req, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}

func (c *Client) DeleteMethodStatement(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/method-statements/%d", id), nil, nil)
}

func (c *Client) DashboardStats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(http.MethodGet, "/api/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
