package idea

import (
	"fmt"
	"net/url"
	"strings"
)

const sharePrefix = "/idea/"

// ShareHash is the last segment of the share path.
func (i Idea) ShareHash() string {
	return strings.TrimPrefix(i.ShareURL, sharePrefix)
}

// ShareLink joins the share path onto the public origin of the web app.
func (i Idea) ShareLink(origin string) string {
	return strings.TrimRight(origin, "/") + i.ShareURL
}

// ParseShareHash extracts the share hash from a bare hash, a share path
// or a full share link.
func ParseShareHash(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty share reference")
	}

	path := input
	if strings.Contains(input, "://") {
		u, err := url.Parse(input)
		if err != nil {
			return "", fmt.Errorf("parse share link: %w", err)
		}
		path = u.Path
	}

	hash := strings.Trim(strings.TrimPrefix(path, sharePrefix), "/")
	if err := validate.Var(hash, "required,alphanum,max=64"); err != nil {
		return "", fmt.Errorf("invalid share hash %q: %w", hash, err)
	}
	return hash, nil
}
