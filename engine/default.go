package engine

import (
	"bufio"
	"compress/gzip"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"

	"github.com/relaycore/httpcall/message"
)

// DefaultEngine is a basic HTTP/1.1 ClientEngine: dial TCP (optionally
// wrapped in TLS), write the request line/headers/body, read the
// status-line/headers/body back, and decompress per Content-Encoding.
// Grounded on the request/response framing an executor package uses to
// shuttle bytes between a client and a provider, and on the
// gzip/flate/brotli/zstd decoder selection a request logger applies when
// it needs to inspect a compressed body.
type DefaultEngine struct {
	// Dial, when non-nil, overrides net.Dial.
	Dial func(network, addr string) (net.Conn, error)
}

// Connect implements ClientEngine.
func (e DefaultEngine) Connect(ctx *RequestContext, next func(err error)) {
	conn, err := e.dial(ctx)
	if err != nil {
		next(&TransportError{Stage: StageNotSent, Cause: err})
		return
	}
	defer conn.Close()

	if ctx.Timeout > 0 {
		_ = conn.SetDeadline(timeNow().Add(ctx.Timeout))
	}

	if _, err := io.WriteString(conn, ctx.Request.String()); err != nil {
		next(&TransportError{Stage: StageNotSent, Cause: err})
		return
	}

	reader := bufio.NewReader(conn)
	resp, err := readResponse(reader)
	if err != nil {
		next(&TransportError{Stage: StageNotReceived, Cause: err})
		return
	}

	if err := decodeContentEncoding(&resp); err != nil {
		next(&TransportError{Stage: StageMalformed, Cause: err})
		return
	}

	ctx.Response = resp
	next(nil)
}

func (e DefaultEngine) dial(ctx *RequestContext) (net.Conn, error) {
	addr := net.JoinHostPort(ctx.Host, ctx.Port)
	dial := e.Dial
	if dial == nil {
		dial = net.Dial
	}
	conn, err := dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	if !ctx.UseTLS {
		return conn, nil
	}
	serverName := ctx.ServerName
	if serverName == "" {
		serverName = ctx.Host
	}
	tlsConn := tls.Client(conn, &tls.Config{ServerName: serverName})
	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}

// Stage distinguishes where a TransportError occurred, feeding the
// not-sent/not-received/malformed terminology the dispatch core's
// DISCONNECTED action matches on.
type Stage string

const (
	StageNotSent     Stage = "not-sent"
	StageNotReceived Stage = "not-received"
	StageMalformed   Stage = "malformed"
)

// TransportError is the engine's typed failure, carrying the stage at
// which the exchange broke down.
type TransportError struct {
	Stage Stage
	Cause error
}

func (e *TransportError) Error() string { return fmt.Sprintf("engine: %s: %v", e.Stage, e.Cause) }
func (e *TransportError) Unwrap() error { return e.Cause }

func readResponse(r *bufio.Reader) (message.Response, error) {
	statusLine, err := readLine(r)
	if err != nil {
		return message.Response{}, err
	}
	line, err := message.ParseStatusLine(statusLine)
	if err != nil {
		return message.Response{}, err
	}
	headers, err := readHeaders(r)
	if err != nil {
		return message.Response{}, err
	}
	body, err := readBody(r, headers)
	if err != nil {
		return message.Response{}, err
	}
	mime, _ := headers.ContentType()
	return message.NewResponse(line, headers, message.NewBytesBody(body, mime)), nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readHeaders(r *bufio.Reader) (*message.Headers, error) {
	headers := message.NewHeaders()
	for {
		line, err := readLine(r)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return headers, nil
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("engine: malformed header line %q", line)
		}
		if err := headers.Put(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}
}

func readBody(r *bufio.Reader, headers *message.Headers) ([]byte, error) {
	if te, ok := headers.Get("Transfer-Encoding"); ok && strings.EqualFold(strings.TrimSpace(te), "chunked") {
		return readChunkedBody(r)
	}
	if cl, ok := headers.Get("Content-Length"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(cl))
		if err != nil {
			return nil, fmt.Errorf("engine: bad Content-Length %q: %w", cl, err)
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	// Neither framing header present: read until the connection closes.
	return io.ReadAll(r)
}

func readChunkedBody(r *bufio.Reader) ([]byte, error) {
	var out []byte
	for {
		sizeLine, err := readLine(r)
		if err != nil {
			return nil, err
		}
		sizeHex := strings.SplitN(sizeLine, ";", 2)[0]
		size, err := strconv.ParseInt(strings.TrimSpace(sizeHex), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("engine: bad chunk size %q: %w", sizeLine, err)
		}
		if size == 0 {
			// consume trailing headers block and the final CRLF
			for {
				line, err := readLine(r)
				if err != nil {
					return nil, err
				}
				if line == "" {
					return out, nil
				}
			}
		}
		chunk := make([]byte, size)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		if _, err := readLine(r); err != nil { // trailing CRLF after the chunk data
			return nil, err
		}
	}
}

func decodeContentEncoding(resp *message.Response) error {
	enc, ok := resp.Headers.Get("Content-Encoding")
	if !ok {
		return nil
	}
	body := resp.Body.Bytes()
	var decoded []byte
	var err error
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "gzip":
		decoded, err = decodeGzip(body)
	case "deflate":
		decoded, err = decodeFlate(body)
	case "br":
		decoded, err = decodeBrotli(body)
	case "zstd":
		decoded, err = decodeZstd(body)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	mime, _ := resp.Headers.ContentType()
	resp.Body = message.NewBytesBody(decoded, mime)
	return nil
}

func decodeGzip(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(newByteReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func decodeFlate(b []byte) ([]byte, error) {
	fr := flate.NewReader(newByteReader(b))
	defer fr.Close()
	return io.ReadAll(fr)
}

func decodeBrotli(b []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(newByteReader(b)))
}

func decodeZstd(b []byte) ([]byte, error) {
	zr, err := zstd.NewReader(newByteReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
