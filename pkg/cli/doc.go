// Package cli provides the webspace command-line interface.
//
// Every command talks to the webspaced daemon over its Unix socket:
//   - images: List images a webspace can be created from
//   - init: Create your webspace from an image
//   - status: Show run state and resource usage
//   - boot, shutdown, reboot: Change the run state
//   - delete: Delete your webspace (asks for confirmation)
//   - log: Show or clear the console log
//   - config: Show or set webspace options (startupDelay, httpPort, httpsPort)
//   - domains: List, add and remove custom domains
//   - ports: List, add and remove port forwards
//   - version: Show build information
//
// Errors are printed as "Error: <message>" on stderr; they never change the
// process exit status.
//
// Usage:
//
//	webspace images
//	webspace init ubuntu/focal
//	webspace -u alice status
//	webspace config set startupDelay 2.5
//	webspace ports add 22 -p 2222
package cli
