package message

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Kind discriminates Body's variants (spec.md §3.2: a message body is one of
// several shapes, not just an opaque byte slice).
type Kind int

const (
	KindBytes Kind = iota
	KindText
	KindJSON
	KindParameters
	KindMultipart
	KindStream
)

// Part is one section of a multipart body.
type Part struct {
	Name     string
	Filename string
	Headers  *Headers
	Content  []byte
}

// Body is a sum type over the shapes a request or response payload can take.
// Exactly one of the typed fields is meaningful, selected by Kind.
type Body struct {
	kind   Kind
	bytes  []byte
	text   string
	json   string // raw JSON text, queried/mutated via gjson/sjson
	params url.Values
	parts  []Part
	stream io.Reader
	mime   Mime
}

// BodyEmpty is the zero-length Bytes body.
var BodyEmpty = Body{kind: KindBytes, mime: MimeOctetStream}

// NewBytesBody wraps an opaque byte payload.
func NewBytesBody(b []byte, mime Mime) Body {
	return Body{kind: KindBytes, bytes: b, mime: mime}
}

// NewTextBody wraps a text/plain payload.
func NewTextBody(s string) Body {
	return Body{kind: KindText, text: s, mime: MimeText}
}

// NewJSONBody validates s as JSON and wraps it, backed by gjson for querying.
func NewJSONBody(s string) (Body, error) {
	if !gjson.Valid(s) {
		return Body{}, fmt.Errorf("message: invalid json body")
	}
	return Body{kind: KindJSON, json: s, mime: MimeJSON}, nil
}

// NewParametersBody wraps form-encoded key/value pairs.
func NewParametersBody(v url.Values) Body {
	return Body{kind: KindParameters, params: v, mime: MimeFormURLEnc}
}

// NewMultipartBody wraps a set of named parts.
func NewMultipartBody(parts []Part) Body {
	return Body{kind: KindMultipart, parts: parts, mime: MimeMultipart}
}

// NewStreamBody wraps a reader for bodies too large or too dynamic to
// buffer eagerly; it is consumed exactly once.
func NewStreamBody(r io.Reader, mime Mime) Body {
	return Body{kind: KindStream, stream: r, mime: mime}
}

// Kind reports the body's active variant.
func (b Body) Kind() Kind { return b.kind }

// Mime reports the body's declared content type.
func (b Body) Mime() Mime { return b.mime }

// Bytes materialises the body as raw bytes, encoding whichever variant is
// active (spec.md: a body must be serialisable onto the wire regardless of
// shape).
func (b Body) Bytes() []byte {
	switch b.kind {
	case KindBytes:
		return b.bytes
	case KindText:
		return []byte(b.text)
	case KindJSON:
		return []byte(b.json)
	case KindParameters:
		return []byte(b.params.Encode())
	case KindMultipart:
		return b.encodeMultipart()
	case KindStream:
		data, _ := io.ReadAll(b.stream)
		return data
	default:
		return nil
	}
}

func (b Body) encodeMultipart() []byte {
	const boundary = "httpcall-boundary"
	var sb strings.Builder
	for _, p := range b.parts {
		sb.WriteString("--" + boundary + "\r\n")
		disposition := fmt.Sprintf(`form-data; name="%s"`, p.Name)
		if p.Filename != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, p.Filename)
		}
		sb.WriteString("Content-Disposition: " + disposition + "\r\n")
		if p.Headers != nil {
			sb.WriteString(p.Headers.String())
		}
		sb.WriteString("\r\n")
		sb.Write(p.Content)
		sb.WriteString("\r\n")
	}
	sb.WriteString("--" + boundary + "--\r\n")
	return []byte(sb.String())
}

// Json returns the raw JSON text for a KindJSON body.
func (b Body) Json() (string, bool) {
	if b.kind != KindJSON {
		return "", false
	}
	return b.json, true
}

// Get queries a JSON body at path using gjson syntax.
func (b Body) Get(path string) (gjson.Result, bool) {
	if b.kind != KindJSON {
		return gjson.Result{}, false
	}
	return gjson.Get(b.json, path), true
}

// WithSet returns a copy of a JSON body with path set to value, via sjson.
func (b Body) WithSet(path string, value any) (Body, error) {
	if b.kind != KindJSON {
		return Body{}, fmt.Errorf("message: WithSet requires a json body")
	}
	next, err := sjson.Set(b.json, path, value)
	if err != nil {
		return Body{}, err
	}
	return Body{kind: KindJSON, json: next, mime: MimeJSON}, nil
}

// Parameters returns the form values for a KindParameters body.
func (b Body) Parameters() (url.Values, bool) {
	if b.kind != KindParameters {
		return nil, false
	}
	return b.params, true
}

// Parts returns the sections of a KindMultipart body.
func (b Body) Parts() ([]Part, bool) {
	if b.kind != KindMultipart {
		return nil, false
	}
	return b.parts, true
}

// Stream returns the underlying reader for a KindStream body.
func (b Body) Stream() (io.Reader, bool) {
	if b.kind != KindStream {
		return nil, false
	}
	return b.stream, true
}

// IsEmpty reports whether the body carries zero bytes (Stream bodies are
// never considered empty since their length is unknown until drained).
func (b Body) IsEmpty() bool {
	if b.kind == KindStream {
		return false
	}
	return len(b.Bytes()) == 0
}
