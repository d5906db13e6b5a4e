package alias

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

// Loader produces the alias table
type Loader func(ctx context.Context) (map[string]string, error)

// NewSourceLoader reads the alias table from a local file or an http(s) URL
func NewSourceLoader(source string, httpClient *http.Client) Loader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return func(ctx context.Context) (map[string]string, error) {
		if source == "" {
			return nil, errors.New("alias source is empty")
		}

		var (
			raw []byte
			err error
		)
		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			raw, err = fetch(ctx, httpClient, source)
		} else {
			raw, err = file.Provider(source).ReadBytes()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "load aliases from %s", source)
		}

		return ParseAliases(bytes.NewReader(raw))
	}
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("HTTP error %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}
