// Package upstream provides the backend pool and the pooled HTTP client used
// to reach it.
package upstream

import (
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
)

// Pool selects backend targets round-robin. It is safe for concurrent use;
// selection uses a single atomic counter.
type Pool struct {
	targets []*url.URL
	counter atomic.Uint64
}

// NewPool builds a Pool from configured backend addresses. Addresses without
// a scheme default to plain HTTP.
func NewPool(addresses []string) (*Pool, error) {
	if len(addresses) == 0 {
		return nil, fmt.Errorf("upstream pool: at least one backend address is required")
	}

	targets := make([]*url.URL, 0, len(addresses))
	for _, addr := range addresses {
		raw := strings.TrimSpace(addr)
		if raw == "" {
			return nil, fmt.Errorf("upstream pool: empty backend address")
		}
		if !strings.Contains(raw, "://") {
			raw = "http://" + raw
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("upstream pool: invalid backend address %q: %w", addr, err)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("upstream pool: backend address %q has no host", addr)
		}
		u.Path = ""
		u.RawQuery = ""
		u.Fragment = ""
		targets = append(targets, u)
	}

	return &Pool{targets: targets}, nil
}

// Next returns the next backend target in round-robin order.
func (p *Pool) Next() *url.URL {
	if len(p.targets) == 1 {
		return p.targets[0]
	}
	n := p.counter.Add(1) - 1
	return p.targets[n%uint64(len(p.targets))]
}

// Targets returns the configured backend addresses for status reporting.
func (p *Pool) Targets() []string {
	out := make([]string, len(p.targets))
	for i, u := range p.targets {
		out[i] = u.String()
	}
	return out
}
