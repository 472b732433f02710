package cli

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const imagesJSON = `[
	{
		"fingerprint": "9d3f2c",
		"aliases": [{"name": "ubuntu/focal", "description": ""}, {"name": "ubuntu", "description": ""}],
		"properties": {"description": "Ubuntu 20.04 LTS"},
		"size": 1048576
	},
	{
		"fingerprint": "a1b2c3",
		"aliases": [],
		"properties": {},
		"size": 512
	}
]`

func TestImages_PrintsEveryImage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/images", writeJSON(imagesJSON))
	d := newFakeDaemon(t, mux)

	stdout, stderr := runCLI(t, d.socket, nil, "images")

	assert.Empty(t, stderr)
	assert.Equal(t, `Available images:
 - Fingerprint: 9d3f2c
   Aliases: ubuntu/focal, ubuntu
   Description: Ubuntu 20.04 LTS
   Size: 1.0 MiB
 - Fingerprint: a1b2c3
   Size: 512 B
`, stdout)
}

func TestImages_JSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/images", writeJSON(imagesJSON))
	d := newFakeDaemon(t, mux)

	stdout, _ := runCLI(t, d.socket, nil, "--json", "images")

	var images []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &images))
	require.Len(t, images, 2)
	assert.Equal(t, "9d3f2c", images[0]["fingerprint"])
}

func TestImages_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/images", writeError(http.StatusInternalServerError, `{"message": "lxd is down"}`))
	d := newFakeDaemon(t, mux)

	stdout, stderr := runCLI(t, d.socket, nil, "images")

	assert.Empty(t, stdout)
	assert.Equal(t, "Error: lxd is down\n", stderr)
}
