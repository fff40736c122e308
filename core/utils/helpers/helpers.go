/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package helpers

import (
	"net"
	"regexp"
	"strings"

	GTIPLogger "github.com/slicingmelon/gotiktokip/core/utils/logger"
)

// RFC 1035
var rxDNSName = regexp.MustCompile(`^([a-zA-Z0-9_]{1}[a-zA-Z0-9\-._]{0,61}[a-zA-Z0-9]{1}\.)*` +
	`([a-zA-Z0-9_]{1}[a-zA-Z0-9\-._]{0,61}[a-zA-Z0-9]{1}\.?)$`)

func IsIP(str string) bool {
	// Split host and port
	host, port, err := net.SplitHostPort(str)
	if err != nil {
		return net.ParseIP(str) != nil
	}

	GTIPLogger.Verbose().Msgf("Split host: %q port: %q", host, port)
	return net.ParseIP(host) != nil
}

func IsDNSName(str string) bool {
	host, _, err := net.SplitHostPort(str)
	if err != nil {
		host = str
	}

	if host == "" {
		return false
	}

	if len(strings.Replace(host, ".", "", -1)) > 255 {
		return false
	}

	if IsIP(host) {
		return false
	}

	return rxDNSName.MatchString(host)
}

// IsNameserver checks that str is a usable ip:port DNS server address
func IsNameserver(str string) bool {
	host, port, err := net.SplitHostPort(str)
	if err != nil || port == "" {
		return false
	}
	return net.ParseIP(host) != nil
}
