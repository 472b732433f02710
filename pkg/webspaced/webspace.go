package webspaced

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const (
	webspacePath = "/v1/webspace"
	statePath    = webspacePath + "/state"
	consolePath  = webspacePath + "/console"
	configPath   = webspacePath + "/config"
	domainsPath  = webspacePath + "/domains"
	portsPath    = webspacePath + "/ports"
)

// Create creates the caller's webspace.
func (c *Client) Create(ctx context.Context, req *InitRequest) error {
	return c.Do(ctx, http.MethodPost, webspacePath, req, nil)
}

// Delete deletes the caller's webspace.
func (c *Client) Delete(ctx context.Context) error {
	return c.Do(ctx, http.MethodDelete, webspacePath, nil, nil)
}

// State returns the webspace's run state and resource usage.
func (c *Client) State(ctx context.Context) (*State, error) {
	var state State
	if err := c.Do(ctx, http.MethodGet, statePath, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Boot starts the webspace.
func (c *Client) Boot(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, statePath, nil, nil)
}

// Shutdown stops the webspace.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.Do(ctx, http.MethodDelete, statePath, nil, nil)
}

// Reboot restarts the webspace.
func (c *Client) Reboot(ctx context.Context) error {
	return c.Do(ctx, http.MethodPut, statePath, nil, nil)
}

// ConsoleLog returns the webspace's console log as plain text.
func (c *Client) ConsoleLog(ctx context.Context) (string, error) {
	var log string
	if err := c.Do(ctx, http.MethodGet, consolePath, nil, &log); err != nil {
		return "", err
	}
	return log, nil
}

// ClearConsoleLog truncates the webspace's console log.
func (c *Client) ClearConsoleLog(ctx context.Context) error {
	return c.Do(ctx, http.MethodDelete, consolePath, nil, nil)
}

// Config returns the webspace's options.
func (c *Client) Config(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := c.Do(ctx, http.MethodGet, configPath, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateConfig patches the webspace's options. Keys absent from patch are
// left unchanged; the server validates values.
func (c *Client) UpdateConfig(ctx context.Context, patch map[string]any) error {
	return c.Do(ctx, http.MethodPatch, configPath, patch, nil)
}

// Domains lists the webspace's custom domains.
func (c *Client) Domains(ctx context.Context) ([]string, error) {
	var domains []string
	if err := c.Do(ctx, http.MethodGet, domainsPath, nil, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// AddDomain adds a custom domain. The daemon verifies ownership before
// responding, so this can take a while.
func (c *Client) AddDomain(ctx context.Context, domain string) error {
	return c.Do(ctx, http.MethodPost, domainsPath+"/"+url.PathEscape(domain), nil, nil)
}

// RemoveDomain removes a custom domain.
func (c *Client) RemoveDomain(ctx context.Context, domain string) error {
	return c.Do(ctx, http.MethodDelete, domainsPath+"/"+url.PathEscape(domain), nil, nil)
}

// Ports returns the webspace's port forwards, keyed by external port.
func (c *Client) Ports(ctx context.Context) (map[uint16]uint16, error) {
	ports := map[uint16]uint16{}
	if err := c.Do(ctx, http.MethodGet, portsPath, nil, &ports); err != nil {
		return nil, err
	}
	return ports, nil
}

// AddPort forwards external to internal and returns the external port in use.
// An external port of 0 asks the server to pick a free one.
func (c *Client) AddPort(ctx context.Context, external, internal uint16) (uint16, error) {
	iStr := strconv.FormatUint(uint64(internal), 10)
	if external == 0 {
		var res addPortResponse
		if err := c.Do(ctx, http.MethodPost, portsPath+"/"+iStr, nil, &res); err != nil {
			return 0, err
		}
		return res.EPort, nil
	}

	eStr := strconv.FormatUint(uint64(external), 10)
	if err := c.Do(ctx, http.MethodPost, portsPath+"/"+eStr+"/"+iStr, nil, nil); err != nil {
		return 0, err
	}
	return external, nil
}

// RemovePort removes the forward for an external port.
func (c *Client) RemovePort(ctx context.Context, external uint16) error {
	return c.Do(ctx, http.MethodDelete, portsPath+"/"+strconv.FormatUint(uint64(external), 10), nil, nil)
}
