/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package resolver

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/slicingmelon/gotiktokip/core/engine/profile"
	GTIPErrorHandler "github.com/slicingmelon/gotiktokip/core/utils/error"
	GTIPLogger "github.com/slicingmelon/gotiktokip/core/utils/logger"
)

const defaultLookupTimeout = 5 * time.Second

type Options struct {
	Timeout time.Duration

	// Nameserver selects a custom ip:port DNS server instead of the
	// system resolver. Mutually exclusive with UseDoH.
	Nameserver string
	UseDoH     bool

	// ResolveHost resolves the bare profile hostname instead of the full
	// profile URL string. Off by default: the lookup target is the whole
	// URL, which the resolver treats as a hostname and normally rejects.
	ResolveHost bool
}

// LookupFunc maps a hostname-like string to its addresses
type LookupFunc func(ctx context.Context, host string) ([]net.IPAddr, error)

type Service struct {
	opts         *Options
	lookup       LookupFunc
	errorHandler *GTIPErrorHandler.ErrorHandler
}

// ResolutionError wraps a failed lookup with the username that caused it
type ResolutionError struct {
	Username string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("Error getting IP address for %s: %v", e.Username, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func NewService(opts *Options) *Service {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultLookupTimeout
	}

	s := &Service{
		opts:         opts,
		errorHandler: GTIPErrorHandler.GetErrorHandler(),
	}

	switch {
	case opts.UseDoH:
		s.lookup = newDoHLookup()
	case opts.Nameserver != "":
		s.lookup = newNameserverLookup(opts.Nameserver)
	default:
		s.lookup = net.DefaultResolver.LookupIPAddr
	}

	return s
}

// ResolveUsername maps a TikTok username to a textual network address.
// It performs exactly one lookup; no retries, no caching of prior results.
func (s *Service) ResolveUsername(ctx context.Context, username string) (string, error) {
	if err := profile.ValidateUsername(username); err != nil {
		return "", err
	}

	target := profile.ProfileURL(username)
	if s.opts.ResolveHost {
		host, err := profile.ProfileHost(username)
		if err != nil {
			return "", &ResolutionError{Username: username, Err: err}
		}
		target = host
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	GTIPLogger.Verbose().Username(username).Msgf("Looking up %q", target)

	ips, err := s.lookup(ctx, target)
	if err == nil && len(ips) == 0 {
		err = fmt.Errorf("no addresses found for %s", target)
	}
	if err != nil {
		s.errorHandler.HandleError(err, GTIPErrorHandler.ErrorContext{
			Username:    username,
			Target:      target,
			ErrorSource: "ResolveUsername",
		})
		return "", &ResolutionError{Username: username, Err: err}
	}

	if GTIPLogger.IsVerboseEnabled() {
		ipStrings := make([]string, 0, len(ips))
		for _, ip := range ips {
			ipStrings = append(ipStrings, ip.IP.String())
		}
		GTIPLogger.Verbose().Username(username).Msgf("Resolved %s -> [%s]", target, strings.Join(ipStrings, ", "))
	}

	return ips[0].IP.String(), nil
}

// newNameserverLookup builds a resolver pinned to a single DNS server
func newNameserverLookup(server string) LookupFunc {
	resolver := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{Timeout: 2 * time.Second}
			return d.DialContext(ctx, "udp", server)
		},
	}
	return resolver.LookupIPAddr
}
