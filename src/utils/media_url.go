package utils

import (
	"net/http"
	"net/url"
	"strings"
)

// MediaPath joins the public media prefix and a stored file name.
func MediaPath(mediaURL, name string) string {
	if name == "" {
		return ""
	}
	if isAbsolute(name) {
		return name
	}
	if !strings.HasSuffix(mediaURL, "/") {
		mediaURL += "/"
	}
	return mediaURL + strings.TrimPrefix(name, "/")
}

// BuildAbsoluteMediaURL returns an absolute URL for path. siteBase wins over
// the request host; without either the path is returned unchanged.
func BuildAbsoluteMediaURL(path, siteBase string, r *http.Request) string {
	if path == "" {
		return ""
	}
	if isAbsolute(path) {
		return path
	}

	if base := strings.TrimSpace(siteBase); base != "" {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		baseURL, err := url.Parse(base)
		if err == nil {
			ref, err := url.Parse(strings.TrimPrefix(path, "/"))
			if err == nil {
				return baseURL.ResolveReference(ref).String()
			}
		}
	}

	if r != nil && r.Host != "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return scheme + "://" + r.Host + path
	}
	return path
}

func isAbsolute(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
