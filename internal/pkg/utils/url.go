package utils

import (
	"net/url"
	"strings"
)

// ResolveProfileImageURL returns image unchanged when it is already an
// absolute URL, otherwise it joins the relative path onto base.
func ResolveProfileImageURL(base, image string) string {
	if image == "" {
		return ""
	}
	if parsed, err := url.Parse(image); err == nil && parsed.IsAbs() {
		return image
	}
	if base == "" {
		return image
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(image, "/")
}
