package gitignore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bashhack/devboot/internal/common"
	"github.com/bashhack/devboot/internal/errors"
)

// DefaultURLTemplate is the template endpoint; %s is replaced with the
// language identifier.
const DefaultURLTemplate = "https://www.toptal.com/developers/gitignore/api/%s"

// PersonalBlock is appended to every fetched template.
const PersonalBlock = `
# Personal
.vscode/
*.code-workspace
.notes/
scratch/
.env.local
`

// maxTemplateSize is the largest response body accepted.
const maxTemplateSize = 4 << 20

// HTTPDoer is the subset of *http.Client the fetcher needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves ignore-file templates over HTTP.
type Fetcher struct {
	client      HTTPDoer
	urlTemplate string
	logger      common.Logger
}

// NewFetcher creates a Fetcher using http.DefaultClient and
// DefaultURLTemplate.
func NewFetcher(logger common.Logger) *Fetcher {
	return NewFetcherWithDeps(http.DefaultClient, DefaultURLTemplate, logger)
}

// NewFetcherWithDeps creates a Fetcher with a custom client and URL template.
func NewFetcherWithDeps(client HTTPDoer, urlTemplate string, logger common.Logger) *Fetcher {
	if logger == nil {
		logger = common.NopLogger{}
	}
	return &Fetcher{
		client:      client,
		urlTemplate: urlTemplate,
		logger:      logger,
	}
}

// URL returns the template URL for language. A comma-separated list selects
// several templates; each name is escaped and the commas are kept.
func (f *Fetcher) URL(language string) string {
	parts := strings.Split(strings.TrimSpace(language), ",")
	for i, part := range parts {
		parts[i] = url.PathEscape(strings.TrimSpace(part))
	}
	return fmt.Sprintf(f.urlTemplate, strings.Join(parts, ","))
}

// Fetch performs a single GET for the language template and returns the
// response body unchanged. Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, language string) (string, error) {
	if strings.TrimSpace(language) == "" {
		return "", errors.NewConfigError("language", language, errors.Wrap(errors.ErrInvalidConfiguration, "language must not be empty"))
	}

	target := f.URL(language)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", errors.NewFetchError(target, 0, errors.Wrap(errors.ErrTemplateFetch, err.Error()))
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", "devboot")

	f.logger.Info("Fetching ignore template %s", target)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", errors.NewFetchError(target, 0, errors.Wrap(errors.ErrTemplateFetch, err.Error()))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTemplateSize+1))
	if err != nil {
		return "", errors.NewFetchError(target, resp.StatusCode, errors.Wrap(errors.ErrTemplateFetch, err.Error()))
	}
	if len(body) > maxTemplateSize {
		return "", errors.NewFetchError(target, resp.StatusCode,
			errors.Wrapf(errors.ErrTemplateFetch, "response body exceeds %d bytes", maxTemplateSize))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.NewFetchError(target, resp.StatusCode, errors.Wrap(errors.ErrTemplateFetch, resp.Status))
	}

	f.logger.Info("Fetched %d bytes of ignore template for %s", len(body), language)
	return string(body), nil
}

// IgnoreFile fetches the template for language and appends PersonalBlock.
func (f *Fetcher) IgnoreFile(ctx context.Context, language string) ([]byte, error) {
	template, err := f.Fetch(ctx, language)
	if err != nil {
		return nil, err
	}
	return []byte(Render(template)), nil
}

// Render appends PersonalBlock to template, separated by a newline when the
// template does not already end with one.
func Render(template string) string {
	if template != "" && !strings.HasSuffix(template, "\n") {
		template += "\n"
	}
	return template + PersonalBlock
}
