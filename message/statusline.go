package message

import (
	"fmt"
	"strings"
)

// StatusLine is "HTTP-version SP status-code SP reason-phrase" (RFC 7230 §3.1.2).
type StatusLine struct {
	Version HttpVersion
	Code    StatusCode
	Reason  ReasonPhrase
}

// ParseStatusLine splits and validates a raw status-line (no trailing CRLF).
// A missing reason-phrase (line ends right after the status code) resolves
// to the standard phrase for that code, or ReasonPhraseAbsent if unknown
// (spec.md §4.1: absent groups yield sensible defaults).
func ParseStatusLine(s string) (StatusLine, error) {
	parts := strings.SplitN(s, " ", 3)
	if len(parts) < 2 {
		return StatusLine{}, fmt.Errorf("message: malformed status-line %q", s)
	}
	version, err := ParseHttpVersion(parts[0])
	if err != nil {
		return StatusLine{}, err
	}
	code, err := ParseStatusCode(parts[1])
	if err != nil {
		return StatusLine{}, err
	}
	reason := ReasonPhraseAbsent
	if len(parts) == 3 {
		reason, err = ParseReasonPhrase(parts[2])
		if err != nil {
			return StatusLine{}, err
		}
	} else if std := StandardReason(code); std != "" {
		reason = MustConstructReasonPhrase(std)
	}
	return StatusLine{Version: version, Code: code, Reason: reason}, nil
}

// String renders the status-line without a trailing CRLF.
func (l StatusLine) String() string {
	reason := l.Reason
	if reason.IsAbsent() {
		if std := StandardReason(l.Code); std != "" {
			reason = MustConstructReasonPhrase(std)
		}
	}
	s := l.Version.String() + " " + l.Code.String()
	if !reason.IsAbsent() {
		s += " " + reason.String()
	}
	return s
}
