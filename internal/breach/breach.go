// Package breach checks passwords against a compromised-credential range API.
//
// The protocol is the k-anonymity range query used by Have I Been Pwned: the
// client sends the first 5 hex characters of the password's SHA-1 digest and
// scans the returned "<suffix>:<count>" lines for the remaining 35 characters.
// The full password or digest never leaves the process.
package breach

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public range-query endpoint.
const DefaultBaseURL = "https://api.pwnedpasswords.com/range"

// Result describes the outcome of a breach lookup.
type Result struct {
	Found bool
	Count int64 // occurrences in known breaches, 0 when not found
}

// Checker looks up a password in a breach dataset.
// Implementations must treat "no data available" as a zero Result, not an error.
type Checker interface {
	Check(password string) (Result, error)
}

// Client queries a range API over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Check implements Checker. A non-200 response means no breach data is
// available and yields a zero Result with nil error; transport errors are
// returned to the caller.
func (c *Client) Check(password string) (Result, error) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := digest[:5], digest[5:]

	resp, err := c.HTTPClient.Get(fmt.Sprintf("%s/%s", strings.TrimRight(c.BaseURL, "/"), prefix))
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	for _, line := range strings.Split(string(body), "\n") {
		entry, count, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		if entry == suffix {
			n, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64)
			if err != nil {
				n = 0
			}
			return Result{Found: true, Count: n}, nil
		}
	}
	return Result{}, nil
}
