// Package mdns advertises the guest pass web UI on the local network.
package mdns

import (
	"fmt"
	"net"
	"strconv"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the DNS-SD service type the web UI is published under.
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain.
	ServiceDomain = "local."
)

// Advertiser keeps an mDNS registration alive until Shutdown is called.
type Advertiser struct {
	server *zeroconf.Server
}

// Advertise registers instance as an HTTP service on port. The TXT record
// carries the path of the card form.
func Advertise(instance string, port int) (*Advertiser, error) {
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, []string{"path=/"}, nil)
	if err != nil {
		return nil, fmt.Errorf("register mdns service: %w", err)
	}

	return &Advertiser{server: server}, nil
}

// Shutdown withdraws the registration.
func (a *Advertiser) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
	}
}

// PortFromAddr extracts the numeric port of a listen address such as
// "0.0.0.0:8080" or ":8080".
func PortFromAddr(addr string) (int, error) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, fmt.Errorf("parse listen address %q: %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("listen address %q has invalid port", addr)
	}

	return port, nil
}
