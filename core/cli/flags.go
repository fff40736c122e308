/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

type multiFlag struct {
	name   string
	usage  string
	value  any
	defVal any
}

func parseFlags() (*CliOptions, error) {
	opts := &CliOptions{}

	flags := []multiFlag{
		{name: "n,username", usage: fmt.Sprintf("TikTok username to look up (Default: %s)", DefaultUsername), value: &opts.Username},
		{name: "l,usernames-file", usage: "File containing list of TikTok usernames (one per line)", value: &opts.UsernamesFile},
		{name: "rh,resolve-host", usage: "Resolve the bare profile hostname instead of the full profile URL", value: &opts.ResolveHost, defVal: false},
		{name: "doh", usage: "Resolve via DNS-over-HTTPS instead of the system resolver", value: &opts.UseDoH, defVal: false},
		{name: "ns,nameserver", usage: "Custom DNS server (format: ip:port) (Example: -ns 1.1.1.1:53)", value: &opts.Nameserver},
		{name: "T,timeout", usage: "Lookup timeout (in milliseconds)", value: &opts.Timeout, defVal: 5000},
		{name: "v,verbose", usage: "Verbose output", value: &opts.Verbose, defVal: false},
		{name: "d,debug", usage: "Debug output including error statistics", value: &opts.Debug, defVal: false},
	}

	// Set up custom usage
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "GoTikTokIP\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		for _, f := range flags {
			names := strings.Split(f.name, ",")
			if len(names) > 1 {
				fmt.Fprintf(os.Stderr, "  -%s, -%s\n", names[0], names[1])
			} else {
				fmt.Fprintf(os.Stderr, "  -%s\n", names[0])
			}

			if f.defVal != nil {
				fmt.Fprintf(os.Stderr, "        %s (Default: %v)\n", f.usage, f.defVal)
			} else {
				fmt.Fprintf(os.Stderr, "        %s\n", f.usage)
			}
		}
	}

	// Register all flags
	for _, f := range flags {
		for _, name := range strings.Split(f.name, ",") {
			name = strings.TrimSpace(name)
			switch v := f.value.(type) {
			case *string:
				if def, ok := f.defVal.(string); ok {
					flag.StringVar(v, name, def, f.usage)
				} else {
					flag.StringVar(v, name, "", f.usage)
				}
			case *int:
				if def, ok := f.defVal.(int); ok {
					flag.IntVar(v, name, def, f.usage)
				} else {
					flag.IntVar(v, name, 0, f.usage)
				}
			case *bool:
				if def, ok := f.defVal.(bool); ok {
					flag.BoolVar(v, name, def, f.usage)
				} else {
					flag.BoolVar(v, name, false, f.usage)
				}
			}
		}
	}

	// Parse flags
	flag.Parse()

	// Set defaults and validate
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}
