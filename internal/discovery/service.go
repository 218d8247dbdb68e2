package discovery

import (
	"fmt"
	"strings"
	"time"
)

// Service is a numfield server found on the network.
type Service struct {
	// Instance is the advertised instance name (e.g., "numfield on studio")
	Instance string

	// Hostname is the mDNS hostname (e.g., "studio.local.")
	Hostname string

	// IP prefers IPv4, falling back to IPv6
	IP string

	Port int

	// Metadata holds the TXT records: "path", "version" and "profile"
	Metadata map[string]string

	DiscoveredAt time.Time
}

// String returns a human-readable representation of the service
func (s *Service) String() string {
	return fmt.Sprintf("%s (%s) at %s:%d", s.Instance, s.Hostname, s.IP, s.Port)
}

// FieldURL returns the WebSocket URL of the service's field endpoint.
func (s *Service) FieldURL() string {
	path := s.GetMetadata("path")
	if path == "" {
		path = DefaultPath
	}
	host := s.IP
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return fmt.Sprintf("ws://%s:%d%s", host, s.Port, path)
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Service) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}
