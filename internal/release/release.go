// Package release checks whether a newer storewalk release has been
// published on GitHub.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// DefaultLatestURL is the GitHub API endpoint for the latest release.
const DefaultLatestURL = "https://api.github.com/repos/storewalk/storewalk/releases/latest"

// requestTimeout bounds the release lookup; a version check must never hang
// the CLI.
const requestTimeout = 5 * time.Second

// Release is the subset of the GitHub release payload the check needs.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries the latest published release.
type Checker struct {
	url        string
	httpClient *http.Client
}

// NewChecker creates a Checker against url; empty means DefaultLatestURL.
func NewChecker(url string) *Checker {
	if url == "" {
		url = DefaultLatestURL
	}
	return &Checker{
		url:        url,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Latest fetches the most recent published release.
func (c *Checker) Latest(ctx context.Context) (Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Release{}, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("fetching latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("fetching latest release: unexpected status %s", resp.Status)
	}

	var rel Release
	if decodeErr := json.NewDecoder(resp.Body).Decode(&rel); decodeErr != nil {
		return Release{}, fmt.Errorf("decoding release response: %w", decodeErr)
	}
	return rel, nil
}

// IsNewer reports whether latest is a strictly newer semver than current.
// Leading "v" prefixes are tolerated on both sides. Development builds
// (current not parseable as semver, e.g. "dev") always report false.
func IsNewer(current, latest string) (bool, error) {
	cur, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, nil //nolint:nilerr // non-semver build versions never flag an update
	}

	lat, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false, fmt.Errorf("latest release tag %q is not valid semver: %w", latest, err)
	}

	return lat.GreaterThan(cur), nil
}
