package httpconf

import (
	"net/http"
	"time"

	"github.com/indigo-web/weblinq/kv"
	"github.com/indigo-web/weblinq/strs"
)

// Credentials are used to authenticate against the remote server.
type Credentials struct {
	Username, Password string
	// Domain is optional and is used by NTLM-like schemes only.
	Domain string
}

// Config describes how HTTP requests are made. It is an immutable value: every With*
// method returns a modified copy, leaving the receiver intact. Headers are shared between
// copies, so they must never be modified in-place, use WithHeader instead.
type Config struct {
	// Headers are included into every request. Names are case-insensitive.
	Headers *kv.Storage
	// Timeout limits the whole request, including reading the response body.
	Timeout time.Duration
	// UseDefaultCredentials makes the client pick credentials of the environment.
	UseDefaultCredentials bool
	// Credentials are nil unless explicitly set.
	Credentials *Credentials
	UserAgent   string
	// Cookies are nil unless explicitly set.
	Cookies []*http.Cookie
	// IgnoreInvalidServerCertificate disables TLS certificate verification.
	IgnoreInvalidServerCertificate bool
}

// DefaultTimeout is used unless another timeout is set.
const DefaultTimeout = 100 * time.Second

// Default returns the configuration with no headers, no cookies, no credentials and
// the DefaultTimeout.
func Default() Config {
	return Config{
		Headers: kv.New(),
		Timeout: DefaultTimeout,
	}
}

// WithHeader returns a copy with the header value added. Already present values of the
// same header are kept.
func (c Config) WithHeader(name, value string) Config {
	c.Headers = c.headers().Clone().Add(name, value)
	return c
}

// WithHeaderValues returns a copy with all the header's values replaced.
func (c Config) WithHeaderValues(name string, values strs.Strings) Config {
	c.Headers = c.headers().Clone().Set(name, values)
	return c
}

// WithHeaders returns a copy using the passed headers as they are. The storage must not be
// modified afterward.
func (c Config) WithHeaders(headers *kv.Storage) Config {
	c.Headers = headers
	return c
}

func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

func (c Config) WithUserAgent(userAgent string) Config {
	c.UserAgent = userAgent
	return c
}

func (c Config) WithCredentials(credentials *Credentials) Config {
	c.Credentials = credentials
	return c
}

func (c Config) WithUseDefaultCredentials(use bool) Config {
	c.UseDefaultCredentials = use
	return c
}

func (c Config) WithCookies(cookies []*http.Cookie) Config {
	c.Cookies = cookies
	return c
}

func (c Config) WithIgnoreInvalidServerCertificate(ignore bool) Config {
	c.IgnoreInvalidServerCertificate = ignore
	return c
}

// Header returns all values of the header.
func (c Config) Header(name string) strs.Strings {
	return c.headers().Values(name)
}

// headers allows a zero Config to be used.
func (c Config) headers() *kv.Storage {
	if c.Headers == nil {
		return kv.New()
	}

	return c.Headers
}
