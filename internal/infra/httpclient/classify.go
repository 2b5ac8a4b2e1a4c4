package httpclient

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/aalvaropc/pokedex/internal/domain"
)

// Classify maps a transport error to a coarse FetchErrorKind.
func Classify(err error) domain.FetchErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return domain.FetchErrorCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.FetchErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.FetchErrorDNS
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.FetchErrorTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.FetchErrorConn
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		return domain.FetchErrorConn
	}
	return domain.FetchErrorUnknown
}
