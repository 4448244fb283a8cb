package publish

import (
	"strings"

	"github.com/0xmhha/snipet/pkg/api"
)

// LocalWebURL is the web frontend used with a local backend.
const LocalWebURL = "http://localhost:5173"

// WebBase returns the base URL of the web frontend for a server.
//
// An explicit webURL wins. A local server maps to LocalWebURL; any other
// server is assumed to host the frontend itself.
func WebBase(serverURL, webURL string) string {
	if webURL != "" {
		return api.NormalizeServerURL(webURL)
	}

	if strings.Contains(serverURL, "127.0.0.1") || strings.Contains(serverURL, "localhost") {
		return LocalWebURL
	}

	return api.NormalizeServerURL(serverURL)
}

// SnippetURL returns the web page of a snippet.
func SnippetURL(serverURL, webURL, id string) string {
	return WebBase(serverURL, webURL) + "/snippet/" + id
}
