package resolver

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/slicingmelon/gotiktokip/core/engine/profile"
)

type fakeLookup struct {
	calls   int
	targets []string
	ips     []net.IPAddr
	err     error
}

func (f *fakeLookup) lookup(ctx context.Context, host string) ([]net.IPAddr, error) {
	f.calls++
	f.targets = append(f.targets, host)
	return f.ips, f.err
}

func TestResolveUsername_EmptyUsername(t *testing.T) {
	fake := &fakeLookup{}
	service := NewService(nil)
	service.lookup = fake.lookup

	_, err := service.ResolveUsername(context.Background(), "")
	if !errors.Is(err, profile.ErrInvalidUsername) {
		t.Fatalf("Expected ErrInvalidUsername, got %v", err)
	}

	if fake.calls != 0 {
		t.Errorf("Lookup attempted for empty username: %d calls", fake.calls)
	}
}

func TestResolveUsername_LookupTarget(t *testing.T) {
	fake := &fakeLookup{ips: []net.IPAddr{{IP: net.ParseIP("93.184.216.34")}}}
	service := NewService(nil)
	service.lookup = fake.lookup

	ip, err := service.ResolveUsername(context.Background(), "80alaajutt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if fake.calls != 1 {
		t.Errorf("Expected exactly one lookup, got %d", fake.calls)
	}

	// The lookup target is the full profile URL, not a bare hostname
	if fake.targets[0] != "https://www.tiktok.com/@80alaajutt" {
		t.Errorf("Unexpected lookup target: %q", fake.targets[0])
	}

	if ip != "93.184.216.34" {
		t.Errorf("Expected first address, got %q", ip)
	}
	if net.ParseIP(ip) == nil {
		t.Errorf("Result is not a textual network address: %q", ip)
	}
}

func TestResolveUsername_ResolveHost(t *testing.T) {
	fake := &fakeLookup{ips: []net.IPAddr{{IP: net.ParseIP("93.184.216.34")}}}
	service := NewService(&Options{ResolveHost: true})
	service.lookup = fake.lookup

	if _, err := service.ResolveUsername(context.Background(), "80alaajutt"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if fake.targets[0] != "www.tiktok.com" {
		t.Errorf("Expected bare hostname target, got %q", fake.targets[0])
	}
}

func TestResolveUsername_LookupFailure(t *testing.T) {
	cause := errors.New("lookup https://www.tiktok.com/@80alaajutt: no such host")
	fake := &fakeLookup{err: cause}
	service := NewService(nil)
	service.lookup = fake.lookup

	_, err := service.ResolveUsername(context.Background(), "80alaajutt")
	if err == nil {
		t.Fatal("Expected resolution error")
	}

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Expected *ResolutionError, got %T", err)
	}

	if resErr.Username != "80alaajutt" {
		t.Errorf("Expected username in error, got %q", resErr.Username)
	}
	if !strings.Contains(err.Error(), "80alaajutt") {
		t.Errorf("Error message missing username: %q", err.Error())
	}
	if !strings.HasPrefix(err.Error(), "Error getting IP address for 80alaajutt: ") {
		t.Errorf("Unexpected error message format: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected wrapped underlying cause")
	}
}

func TestResolveUsername_NoAddresses(t *testing.T) {
	fake := &fakeLookup{}
	service := NewService(nil)
	service.lookup = fake.lookup

	_, err := service.ResolveUsername(context.Background(), "80alaajutt")
	if err == nil {
		t.Fatal("Expected error for empty address list")
	}

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Expected *ResolutionError, got %T", err)
	}
}

func TestNewService_Defaults(t *testing.T) {
	service := NewService(nil)

	if service.opts.Timeout != defaultLookupTimeout {
		t.Errorf("Expected default timeout %v, got %v", defaultLookupTimeout, service.opts.Timeout)
	}
	if service.lookup == nil {
		t.Error("Expected default lookup function")
	}
}
