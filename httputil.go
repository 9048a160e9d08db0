package realrates

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/realrates/date"
)

// contains http utils to deal with remote providers

// CacheDir is the folder where HTTP responses are cached.
var CacheDir = filepath.Join(os.TempDir(), "realrates")

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base   http.RoundTripper
	period date.Period // zero value is daily
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If a fresh cached response is not found, it proceeds
// with the actual HTTP request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key contains the current period, so entries expire at the end of the period.
	key := fmt.Sprintf("%s %s %s", c.period.Key(date.Today()), req.Method, req.URL.String())
	key = fmt.Sprintf("%s-%x", c.period, sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(CacheDir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(CacheDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(CacheDir, key), content, 0o644)
}

// NewCachingClient returns an http.Client whose successful responses are
// cached on disk until the end of the current period.
func NewCachingClient(period date.Period) *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport, period: period}
	return client
}

// Get performs an HTTP GET request and returns the response body.
//
// Any status other than 200 is an error.
func Get(client *http.Client, addr string) ([]byte, error) {
	resp, err := client.Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// JSONGet performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func JSONGet(client *http.Client, addr string, data any) error {
	body, err := Get(client, addr)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
