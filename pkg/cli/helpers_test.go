package cli

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/netsoc/webspace-cli/pkg/cliconfig"
	"github.com/netsoc/webspace-cli/pkg/webspaced"
	"github.com/stretchr/testify/require"
)

// request is what the fake daemon saw for one call.
type request struct {
	Method string
	Path   string
	User   string
	Body   string
}

// fakeDaemon serves a mux on a Unix socket and records every request.
type fakeDaemon struct {
	socket string

	mu       sync.Mutex
	requests []request
}

func newFakeDaemon(t *testing.T, mux *http.ServeMux) *fakeDaemon {
	t.Helper()

	d := &fakeDaemon{}

	dir, err := os.MkdirTemp("", "wsd")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	d.socket = filepath.Join(dir, "server.sock")

	ln, err := net.Listen("unix", d.socket)
	require.NoError(t, err)

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		d.mu.Lock()
		d.requests = append(d.requests, request{
			Method: r.Method,
			Path:   r.URL.Path,
			User:   r.Header.Get(webspaced.UserHeader),
			Body:   string(body),
		})
		d.mu.Unlock()

		mux.ServeHTTP(w, r)
	}))
	_ = srv.Listener.Close()
	srv.Listener = ln
	srv.Start()
	t.Cleanup(srv.Close)

	return d
}

func (d *fakeDaemon) Requests() []request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]request(nil), d.requests...)
}

// Calls returns "METHOD path" for every request, in order.
func (d *fakeDaemon) Calls() []string {
	var calls []string
	for _, r := range d.Requests() {
		calls = append(calls, r.Method+" "+r.Path)
	}
	return calls
}

func writeJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeError(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// fakePrompter answers prompts from a script.
type fakePrompter struct {
	confirm   bool
	passwords []string
	asked     []string
}

func (p *fakePrompter) Confirm(question string, _ bool) (bool, error) {
	p.asked = append(p.asked, question)
	return p.confirm, nil
}

func (p *fakePrompter) Password(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.passwords) == 0 {
		return "", errNoAnswer
	}
	pw := p.passwords[0]
	p.passwords = p.passwords[1:]
	return pw, nil
}

// isolateConfig keeps config files and WEBSPACE_* variables of the machine
// running the tests out of the way.
func isolateConfig(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, env := range []string{
		cliconfig.EnvSocket, cliconfig.EnvUser, cliconfig.EnvTimeout, cliconfig.EnvLogLevel,
		cliconfig.EnvLogFormat, cliconfig.EnvVerbose, cliconfig.EnvJSON, cliconfig.EnvConfig,
	} {
		t.Setenv(env, "")
	}
}

// runCLI executes the command tree against socket, with config files and
// environment isolated, and returns what it wrote to stdout and stderr.
func runCLI(t *testing.T, socket string, p Prompter, args ...string) (stdout, stderr string) {
	t.Helper()
	isolateConfig(t)
	return execute(t, p, append([]string{"--socket", socket}, args...)...)
}

// execute runs the command tree with args as given.
func execute(t *testing.T, p Prompter, args ...string) (stdout, stderr string) {
	t.Helper()

	if p == nil {
		p = &fakePrompter{}
	}
	var outBuf, errBuf bytes.Buffer
	root := NewRootCmd(p)
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	require.NoError(t, root.ExecuteContext(context.Background()))
	return outBuf.String(), errBuf.String()
}
