package message

import "github.com/relaycore/httpcall/internal/grammar"

// ReasonPhrase is the human-readable text accompanying a status code.
type ReasonPhrase struct {
	value string
	set   bool
}

// ReasonPhraseAbsent is the "no reason phrase" sentinel.
var ReasonPhraseAbsent = ReasonPhrase{}

// standardReasons maps well-known status codes to their default phrase, used
// when a parsed status-line omits the phrase (spec.md §4.1: "missing status
// code ⇒ 200/OK" generalises to "missing reason phrase ⇒ the standard one").
var standardReasons = map[string]string{
	"200": "OK",
	"201": "Created",
	"204": "No Content",
	"301": "Moved Permanently",
	"302": "Found",
	"304": "Not Modified",
	"400": "Bad Request",
	"401": "Unauthorized",
	"403": "Forbidden",
	"404": "Not Found",
	"500": "Internal Server Error",
	"502": "Bad Gateway",
	"503": "Service Unavailable",
}

// StandardReason returns the default reason phrase for a status code, or ""
// if unknown.
func StandardReason(code StatusCode) string { return standardReasons[code.String()] }

// ParseReasonPhrase validates s against the reason-phrase grammar.
func ParseReasonPhrase(s string) (ReasonPhrase, error) {
	if err := grammar.Check(grammar.CategoryReasonPhrase, s, grammar.MatchReasonPhrase); err != nil {
		return ReasonPhrase{}, err
	}
	return ReasonPhrase{value: s, set: true}, nil
}

// MustConstructReasonPhrase skips validation.
func MustConstructReasonPhrase(s string) ReasonPhrase { return ReasonPhrase{value: s, set: true} }

// String returns the reason phrase's textual form.
func (r ReasonPhrase) String() string { return r.value }

// IsAbsent reports whether no reason phrase was ever set.
func (r ReasonPhrase) IsAbsent() bool { return !r.set }
