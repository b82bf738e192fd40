// Package netx downloads archived reports from presigned URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Download fetches url with a GET and copies the body to dst. Any status
// other than 200 is an error carrying a prefix of the response body.
func Download(ctx context.Context, url string, dst io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}
	return io.Copy(dst, resp.Body)
}
