package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/coldbrook/pixelseg/internal/logging"
)

// Request is a single line-delimited JSON request read from stdin.
type Request struct {
	ID     interface{}     `json:"id,omitempty"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response is a single line-delimited JSON response written to stdout.
type Response struct {
	ID     interface{} `json:"id,omitempty"`
	Result interface{} `json:"result,omitempty"`
	Error  *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo carries a failed request's error back to the caller.
type ErrorInfo struct {
	Message string `json:"message"`
}

// Server reads requests from an input stream and writes responses to
// an output stream, dispatching each request to the method it names.
type Server struct {
	log *logging.Logger
}

// New creates a daemon instance.
func New(log *logging.Logger) *Server {
	return &Server{log: log}
}

// Run drives the read-dispatch-write loop until r is exhausted or
// returns an error. One malformed line is logged and skipped; it does
// not terminate the loop.
func (s *Server) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Printf("server: malformed request: %v", err)
			continue
		}

		resp := s.dispatch(&req)
		if err := encoder.Encode(resp); err != nil {
			s.log.Printf("server: failed to encode response: %v", err)
			encoder.Encode(&Response{ID: req.ID, Error: &ErrorInfo{Message: "encoding result: " + err.Error()}})
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("server: scanner error: %w", err)
	}
	return nil
}

// dispatch routes a request to its method handler.
func (s *Server) dispatch(req *Request) *Response {
	var (
		result interface{}
		err    error
	)

	switch req.Method {
	case "segment.agglomerative":
		result, err = handleAgglomerative(req.Params)
	case "segment.competitive":
		result, err = handleCompetitive(req.Params)
	case "image.info":
		result, err = handleImageInfo(req.Params)
	default:
		err = fmt.Errorf("method not found: %s", req.Method)
	}

	if err != nil {
		return &Response{ID: req.ID, Error: &ErrorInfo{Message: err.Error()}}
	}
	return &Response{ID: req.ID, Result: result}
}
