// Package server runs numfield input controllers for remote widgets over
// WebSocket.
//
// A widget connects to /field, optionally naming a profile:
//
//	ws://localhost:8765/field?profile=eur
//
// Each connection gets its own session: an in-memory field mirroring the
// widget and an input controller driving it. The widget forwards its field
// events as protocol.Event frames; the session answers with render and
// notify messages (see package protocol).
//
// # Ordering
//
// Every event produces one render of the field followed by the
// notifications the event caused. The controller's deferred focus step is
// queued by the session and run after the focus event's own render has been
// produced, so the widget first settles its selection and then receives the
// distraction-free rendering.
//
// # Endpoints
//
//   - /field: WebSocket field sessions
//   - /healthz: JSON status with the number of active sessions
//
// # Concurrency
//
// A session is owned by its connection's read goroutine; controllers are
// never shared. Keep-alive pings use WriteControl, which gorilla/websocket
// allows concurrently with the read loop's writes.
//
// # Discovery
//
// With Config.MDNS set, the server advertises itself as "_numfield._tcp"
// so `numfield discover` can find it.
package server
