// Package server implements a line-delimited JSON daemon for the
// segmentation engines.
//
// It is a scriptable, non-interactive second front-end distinct from
// the one-shot CLI: a long-running process reads one request per line
// from stdin and writes one response per line to stdout, so a caller
// can pipe a sequence of segmentation jobs through a single process
// without paying process-startup cost per image.
//
// # Protocol
//
// Requests and responses are newline-delimited JSON objects, not
// JSON-RPC: there is no protocol version handshake and no batching.
//
//	{"method": "segment.agglomerative", "params": {"path": "in.png", "k": 500, "sigma": 0.8}}
//	{"method": "segment.competitive", "params": {"path": "in.png", "seeds": {"0": 1, "99": 2}, "conn": 4}}
//	{"method": "image.info", "params": {"path": "in.png"}}
//
// Every response carries the request id back unchanged plus either a
// result or an error:
//
//	{"id": 1, "result": {...}}
//	{"id": 1, "error": {"message": "..."}}
//
// # Error handling
//
// Malformed request lines are logged to stderr and skipped rather than
// terminating the process — one bad line must not take down a
// long-running daemon mid-batch. Errors from loading or segmenting an
// image (an unreadable file, for example) are returned as a response
// error object, not a process exit. A missing or non-positive k in
// segment.agglomerative falls back to 500 rather than being rejected.
package server
