package cli

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/webspace/config", writeJSON(`{"startupDelay": 3, "httpPort": 80, "httpsPort": 443}`))
	d := newFakeDaemon(t, mux)

	for _, args := range [][]string{{"config"}, {"config", "show"}} {
		stdout, stderr := runCLI(t, d.socket, nil, args...)

		assert.Empty(t, stderr)
		assert.Equal(t, "Webspace configuration:\nstartupDelay: 3\nhttpPort: 80\nhttpsPort: 443\n", stdout)
	}
}

func TestConfigSet_CoercesValue(t *testing.T) {
	tests := []struct {
		option string
		value  string
		body   string
	}{
		{"startupDelay", "2.5", `{"startupDelay":2.5}`},
		{"startupDelay", "3", `{"startupDelay":3}`},
		{"httpPort", "8080", `{"httpPort":8080}`},
		{"httpsPort", "8443", `{"httpsPort":8443}`},
	}

	for _, tt := range tests {
		t.Run(tt.option+"="+tt.value, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("PATCH /v1/webspace/config", noContent)
			d := newFakeDaemon(t, mux)

			_, stderr := runCLI(t, d.socket, nil, "config", "set", tt.option, tt.value)

			assert.Empty(t, stderr)
			reqs := d.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodPatch, reqs[0].Method)
			assert.JSONEq(t, tt.body, reqs[0].Body)
		})
	}
}

func TestConfigSet_RejectedLocally(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{
			name:   "not a number",
			args:   []string{"startupDelay", "soon"},
			stderr: "Error: invalid value for startupDelay: \"soon\" is not a number\n",
		},
		{
			name:   "not a port",
			args:   []string{"httpPort", "80.5"},
			stderr: "Error: invalid value for httpPort: \"80.5\" is not a valid port number\n",
		},
		{
			name:   "unknown option",
			args:   []string{"name", "web"},
			stderr: "Error: unknown option \"name\" (must be one of startupDelay, httpPort, httpsPort)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFakeDaemon(t, http.NewServeMux())

			_, stderr := runCLI(t, d.socket, nil, append([]string{"config", "set"}, tt.args...)...)

			assert.Equal(t, tt.stderr, stderr)
			assert.Empty(t, d.Calls())
		})
	}
}
