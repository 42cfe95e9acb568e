package message

import "strings"

// Response is a full HTTP/1.1 response message: status-line, headers, body.
type Response struct {
	Line    StatusLine
	Headers *Headers
	Body    Body
}

// NewResponse builds a Response with no-encode inputs.
func NewResponse(line StatusLine, headers *Headers, body Body) Response {
	if headers == nil {
		headers = NewHeaders()
	}
	return Response{Line: line, Headers: headers, Body: body}
}

// ParseResponse decodes a full HTTP/1.1 response message off the wire,
// mirroring ParseRequest's framing rules.
func ParseResponse(raw string) (Response, error) {
	headBlock, rest, err := splitHeadBody(raw)
	if err != nil {
		return Response{}, err
	}
	lines := strings.Split(headBlock, "\r\n")
	line, err := ParseStatusLine(lines[0])
	if err != nil {
		return Response{}, err
	}
	headers, err := parseHeaderLines(lines[1:])
	if err != nil {
		return Response{}, err
	}
	bodyBytes := sliceBody(headers, rest)
	mime, _ := headers.ContentType()
	return Response{Line: line, Headers: headers, Body: NewBytesBody(bodyBytes, mime)}, nil
}

// String serialises the response back onto the wire.
func (r Response) String() string {
	var b strings.Builder
	b.WriteString(r.Line.String())
	b.WriteString("\r\n")
	b.WriteString(r.Headers.String())
	b.WriteString("\r\n")
	b.Write(r.Body.Bytes())
	return b.String()
}

// Clone deep-copies the headers and the body's byte payload; the form
// values, multipart parts and stream reader of other body kinds are shared
// with the original.
func (r Response) Clone() Response {
	body := r.Body
	body.bytes = append([]byte(nil), r.Body.bytes...)
	return Response{Line: r.Line, Headers: r.Headers.Clone(), Body: body}
}

// IsSuccess reports whether the status class is 2xx.
func (r Response) IsSuccess() bool { return r.Line.Code.Class() == 2 }
