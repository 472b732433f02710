package cli

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCommands(t *testing.T) {
	tests := []struct {
		args   []string
		call   string
		stdout string
	}{
		{[]string{"boot"}, "POST /v1/webspace/state", "Starting your webspace... done.\n"},
		{[]string{"shutdown"}, "DELETE /v1/webspace/state", "Stopping your webspace... done.\n"},
		{[]string{"reboot"}, "PUT /v1/webspace/state", "Restarting your webspace... done.\n"},
		{[]string{"delete", "--yes"}, "DELETE /v1/webspace", "Deleting your webspace... done.\n"},
		{[]string{"log", "--clear"}, "DELETE /v1/webspace/console", "Clearing console log... done.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/", noContent)
			d := newFakeDaemon(t, mux)

			stdout, stderr := runCLI(t, d.socket, nil, tt.args...)

			assert.Empty(t, stderr)
			assert.Equal(t, tt.stdout, stdout)
			assert.Equal(t, []string{tt.call}, d.Calls())
		})
	}
}

func TestBoot_Fails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/webspace/state", writeError(http.StatusBadGateway, "<html>bad gateway</html>"))
	d := newFakeDaemon(t, mux)

	stdout, stderr := runCLI(t, d.socket, nil, "boot")

	assert.Equal(t, "Starting your webspace...\n", stdout)
	assert.Equal(t, "Error: server returned 502 Bad Gateway\n", stderr)
}

func TestDelete_Confirmation(t *testing.T) {
	tests := []struct {
		name    string
		confirm bool
		calls   []string
	}{
		{"confirmed", true, []string{"DELETE /v1/webspace"}},
		{"declined", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("DELETE /v1/webspace", noContent)
			d := newFakeDaemon(t, mux)
			p := &fakePrompter{confirm: tt.confirm}

			_, stderr := runCLI(t, d.socket, p, "delete")

			assert.Empty(t, stderr)
			assert.Len(t, p.asked, 1)
			assert.Equal(t, tt.calls, d.Calls())
		})
	}
}

func TestDelete_YesSkipsPrompt(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /v1/webspace", noContent)
	d := newFakeDaemon(t, mux)
	p := &fakePrompter{}

	runCLI(t, d.socket, p, "delete", "-y")

	assert.Empty(t, p.asked)
	assert.Equal(t, []string{"DELETE /v1/webspace"}, d.Calls())
}

func TestLog_PrintsConsole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/webspace/console", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("[  OK  ] Reached target Multi-User System."))
	})
	d := newFakeDaemon(t, mux)

	stdout, stderr := runCLI(t, d.socket, nil, "log")

	assert.Empty(t, stderr)
	assert.Equal(t, "[  OK  ] Reached target Multi-User System.\n", stdout)
}
