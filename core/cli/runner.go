/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/slicingmelon/gotiktokip/core/engine/resolver"
	GTIPErrorHandler "github.com/slicingmelon/gotiktokip/core/utils/error"
	GTIPLogger "github.com/slicingmelon/gotiktokip/core/utils/logger"
)

type Runner struct {
	RunnerOptions *CliOptions
	Usernames     []string
	Resolver      *resolver.Service
}

func NewRunner() *Runner {
	// Initialize the singleton error handler
	_ = GTIPErrorHandler.GetErrorHandler()
	return &Runner{}
}

func (r *Runner) Initialize() error {
	// Step 1: Parse CLI flags
	opts, err := parseFlags()
	if err != nil {
		return err
	}
	r.RunnerOptions = opts

	if opts.Verbose {
		GTIPLogger.DefaultLogger.EnableVerbose()
	}
	if opts.Debug {
		GTIPLogger.DefaultLogger.EnableDebug()
	}

	GTIPLogger.Verbose().Msgf("GoTikTokIP v%s", GOTIKTOKIP_VERSION)

	// Step 2: Collect usernames to look up
	usernames, err := r.collectUsernames()
	if err != nil {
		return fmt.Errorf("failed to collect usernames: %w", err)
	}
	r.Usernames = usernames

	// Step 3: Initialize the resolver service
	r.Resolver = resolver.NewService(&resolver.Options{
		Timeout:     time.Duration(opts.Timeout) * time.Millisecond,
		Nameserver:  opts.Nameserver,
		UseDoH:      opts.UseDoH,
		ResolveHost: opts.ResolveHost,
	})

	return nil
}

// Run performs one blocking lookup per username, sequentially, and prints
// the outcome line for each. Lookup failures are reported, not fatal.
func (r *Runner) Run() error {
	for _, username := range r.Usernames {
		ipAddress, err := r.Resolver.ResolveUsername(context.Background(), username)
		if err != nil {
			fmt.Println(formatErrorLine(err))
			continue
		}
		fmt.Println(formatSuccessLine(username, ipAddress))
	}

	if GTIPLogger.IsDebugEnabled() {
		GTIPErrorHandler.GetErrorHandler().PrintErrorStats()
	}

	return nil
}

func (r *Runner) collectUsernames() ([]string, error) {
	if r.RunnerOptions.UsernamesFile != "" {
		return r.readUsernamesFromFile(r.RunnerOptions.UsernamesFile)
	}
	return []string{r.RunnerOptions.Username}, nil
}

// readUsernamesFromFile reads usernames from the specified file
func (r *Runner) readUsernamesFromFile(usernamesFile string) ([]string, error) {
	file, err := os.Open(usernamesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open usernames file: %v", err)
	}
	defer file.Close()

	var usernames []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			usernames = append(usernames, strings.TrimPrefix(line, "@"))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read usernames file: %v", err)
	}

	if len(usernames) == 0 {
		return nil, fmt.Errorf("no usernames found in %s", usernamesFile)
	}

	return usernames, nil
}

func formatSuccessLine(username, ipAddress string) string {
	return fmt.Sprintf("The IP address for TikTok username '%s' is: %s", username, ipAddress)
}

func formatErrorLine(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
