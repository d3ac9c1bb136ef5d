// Package cli provides the interactive filedesk command-line client.
//
// It wires configuration, the HTTP client, the download area and an
// interactive REPL whose commands mirror the service operations. Each
// operation owns a tab; running a command activates its tab and writes the
// result to the tab's pane, which `show` reprints later.
//
// Commands:
//   - upload [path] [user]       upload a local file
//   - download [name] [user]     download a stored file by name
//   - fetch [url] [user]         ask the server to download a URL
//   - files                      list stored files
//   - tabs, tab <id>, show       tab navigation
//
// Missing arguments are prompted for. Outcomes are announced through a
// single notification path; see App.report.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
