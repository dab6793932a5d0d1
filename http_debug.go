package bigcommerce

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request and response for troubleshooting API
// communication: malformed payloads, auth failures, unexpected redirects.
// Dumps include full bodies and credentials, so enable it only against
// development stores.
//
// Activation: pass WithDebugLogging(true), or set BIGCOMMERCE_DEBUG=true or
// DEBUG=true in the environment.
type debugTransport struct{ base http.RoundTripper }

func newDebugTransport(base http.RoundTripper) http.RoundTripper {
	return &debugTransport{base: base}
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging was requested via
// the environment: BIGCOMMERCE_DEBUG for targeted client debugging, DEBUG
// for broader application debugging.
func debugLoggingRequested() bool {
	return os.Getenv("BIGCOMMERCE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
