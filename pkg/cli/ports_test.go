package cli

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortsShow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/webspace/ports", writeJSON(`{"41234": 22, "8080": 80}`))
	d := newFakeDaemon(t, mux)

	stdout, stderr := runCLI(t, d.socket, nil, "ports")

	assert.Empty(t, stderr)
	assert.Equal(t, "Webspace ports:\n - 8080 -> 80\n - 41234 -> 22\n", stdout)
}

func TestPortsAdd_ServerChoosesExternalPort(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/webspace/ports/{iport}", writeJSON(`{"ePort": 41234}`))
	d := newFakeDaemon(t, mux)

	stdout, stderr := runCLI(t, d.socket, nil, "ports", "add", "22")

	assert.Empty(t, stderr)
	assert.Equal(t, "Port 22 in your webspace is now accessible externally via port 41234\n", stdout)
	assert.Equal(t, []string{"POST /v1/webspace/ports/22"}, d.Calls())
}

func TestPortsAdd_ExplicitExternalPort(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/webspace/ports/{eport}/{iport}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})
	d := newFakeDaemon(t, mux)

	stdout, stderr := runCLI(t, d.socket, nil, "ports", "add", "22", "-p", "2222")

	assert.Empty(t, stderr)
	assert.Equal(t, "Port 22 in your webspace is now accessible externally via port 2222\n", stdout)
	assert.Equal(t, []string{"POST /v1/webspace/ports/2222/22"}, d.Calls())
}

func TestPortsRemove(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /v1/webspace/ports/{eport}", noContent)
	d := newFakeDaemon(t, mux)

	_, stderr := runCLI(t, d.socket, nil, "ports", "remove", "2222")

	assert.Empty(t, stderr)
	assert.Equal(t, []string{"DELETE /v1/webspace/ports/2222"}, d.Calls())
}

func TestPorts_InvalidPortArgument(t *testing.T) {
	d := newFakeDaemon(t, http.NewServeMux())

	_, stderr := runCLI(t, d.socket, nil, "ports", "add", "ssh")

	assert.Equal(t, "Error: \"ssh\" is not a valid port number\n", stderr)
	assert.Empty(t, d.Calls())
}
