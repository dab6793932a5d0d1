package conn

import (
	"fmt"
	"net/http"
	"net/url"

	apierr "github.com/stackline/bigcommerce-go/internal/errors"
)

// isRedirect reports whether the last exchange asked for a redirect the
// manual follower handles.
func (c *Connection) isRedirect() bool {
	return c.status == http.StatusMovedPermanently || c.status == http.StatusFound
}

// nextRedirectURL resolves the Location header of the last exchange and
// advances the redirect counter. An absolute Location is used verbatim;
// anything else resolves against the scheme and host of the effective URL.
// Exceeding MaxRedirects raises a too-many-redirects network fault.
func (c *Connection) nextRedirectURL() (string, error) {
	if c.redirectsFollowed >= c.cfg.MaxRedirects {
		return "", apierr.TooManyRedirects(c.cfg.MaxRedirects)
	}
	loc := c.Header("Location")
	if loc == "" {
		return "", apierr.Network("redirect", fmt.Errorf("status %d without Location header", c.status))
	}
	target, err := url.Parse(loc)
	if err != nil {
		return "", apierr.Network("redirect", err)
	}
	var next *url.URL
	if target.IsAbs() {
		next = target
	} else {
		base, err := url.Parse(c.effectiveURL)
		if err != nil {
			return "", apierr.Network("redirect", err)
		}
		next = (&url.URL{Scheme: base.Scheme, Host: base.Host}).ResolveReference(target)
	}
	c.redirectsFollowed++
	return next.String(), nil
}
