// Package services implements the file operations offered by the client:
// upload, download by name, download from a URL and listing. Services
// validate input before any request is issued and turn server replies into
// results or typed errors for the CLI to report.
package services
