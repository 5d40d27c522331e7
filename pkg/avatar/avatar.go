package avatar

import "strings"

// Decorator turns a stored avatar filename into a public URL.
type Decorator struct {
	BaseURL     string
	DefaultPath string
}

func NewDecorator(baseURL, defaultPath string) Decorator {
	return Decorator{BaseURL: baseURL, DefaultPath: defaultPath}
}

// URL returns BaseURL+filename, or DefaultPath when nothing is on file.
func (d Decorator) URL(filename *string) string {
	if filename == nil || strings.TrimSpace(*filename) == "" {
		return d.DefaultPath
	}
	if d.BaseURL == "" {
		return *filename
	}
	return strings.TrimRight(d.BaseURL, "/") + "/" + strings.TrimLeft(*filename, "/")
}
