/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"fmt"
	"os"

	"github.com/slicingmelon/gotiktokip/core/utils/helpers"
)

const GOTIKTOKIP_VERSION = "0.1.0"

// DefaultUsername is looked up when no username is supplied
const DefaultUsername = "80alaajutt"

// CliOptions represents command-line options
type CliOptions struct {
	// Input options
	Username      string
	UsernamesFile string

	// Lookup configuration
	ResolveHost bool
	UseDoH      bool
	Nameserver  string
	Timeout     int // in milliseconds

	// Output options
	Verbose bool
	Debug   bool
}

// setDefaults sets default values for options
func (o *CliOptions) setDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = 5000
	}

	if o.Username == "" && o.UsernamesFile == "" {
		o.Username = DefaultUsername
	}
}

// validate performs all validation checks
func (o *CliOptions) validate() error {
	if o.Username != "" && o.UsernamesFile != "" {
		return fmt.Errorf("cannot use both username (-n) and usernames file (-l)")
	}

	if o.UsernamesFile != "" {
		if _, err := os.Stat(o.UsernamesFile); err != nil {
			return fmt.Errorf("cannot read usernames file: %v", err)
		}
	}

	if o.UseDoH && o.Nameserver != "" {
		return fmt.Errorf("cannot use both DoH (-doh) and a custom nameserver (-ns)")
	}

	if o.Nameserver != "" && !helpers.IsNameserver(o.Nameserver) {
		return fmt.Errorf("invalid nameserver %q: expected ip:port (example: -ns 1.1.1.1:53)", o.Nameserver)
	}

	return nil
}
