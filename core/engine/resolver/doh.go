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

	"github.com/likexian/doh"
	"github.com/likexian/doh/dns"
)

// newDoHLookup resolves over DNS-over-HTTPS with automatic provider
// selection. Still a single lookup per call, A then AAAA.
func newDoHLookup() LookupFunc {
	dohClient := doh.Use(
		doh.CloudflareProvider,
		doh.GoogleProvider,
		doh.Quad9Provider,
	)

	return func(ctx context.Context, host string) ([]net.IPAddr, error) {
		var ips []net.IPAddr
		domain := dns.Domain(host)

		rspA, errA := dohClient.Query(ctx, domain, dns.TypeA)
		if errA == nil && rspA != nil {
			for _, answer := range rspA.Answer {
				if ip := net.ParseIP(answer.Data); ip != nil {
					ips = append(ips, net.IPAddr{IP: ip})
				}
			}
		}

		rspAAAA, errAAAA := dohClient.Query(ctx, domain, dns.TypeAAAA)
		if errAAAA == nil && rspAAAA != nil {
			for _, answer := range rspAAAA.Answer {
				if ip := net.ParseIP(answer.Data); ip != nil {
					ips = append(ips, net.IPAddr{IP: ip})
				}
			}
		}

		if len(ips) == 0 {
			if errA != nil {
				return nil, errA
			}
			if errAAAA != nil {
				return nil, errAAAA
			}
			return nil, fmt.Errorf("DoH resolution returned no IPs for %s", host)
		}

		return ips, nil
	}
}
