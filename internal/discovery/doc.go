// Package discovery advertises and finds numfield servers with mDNS.
//
// A server started with mDNS enabled registers a "_numfield._tcp" service
// whose TXT records carry the field endpoint path, the server version and
// the default profile. Clients browse for that service type and connect to
// the advertised WebSocket URL.
//
// # Usage Example
//
//	reg, err := discovery.Register("numfield on studio", 8765, map[string]string{
//	    "path":    "/field",
//	    "version": version.Version,
//	})
//	if err != nil {
//	    return err
//	}
//	defer reg.Shutdown()
//
//	services, err := discovery.Scan(ctx, 5*time.Second)
//	for _, svc := range services {
//	    fmt.Println(svc, svc.FieldURL())
//	}
//
// # Network Requirements
//
// mDNS uses UDP port 5353 on the local link. Discovery does not cross
// routers or VLANs, and a host firewall may need to allow multicast traffic.
package discovery
