// Package engine implements the transport collaborator contract: given a
// fully-formed request and a network target, produce a parsed response or
// report why it could not.
package engine

import (
	"time"

	"github.com/relaycore/httpcall/message"
)

// RequestContext carries everything a ClientEngine needs to perform one
// exchange: the wire-ready request, the network target to dial, and where
// to deposit the response once it is parsed.
type RequestContext struct {
	Request  message.Request
	Host     string
	Port     string
	UseTLS   bool
	ServerName string // SNI override; defaults to Host
	Timeout  time.Duration

	Response message.Response
}

// ClientEngine is the external transport collaborator contract (spec.md
// §4.5): Connect mutates ctx.Response on success and calls next(nil); on
// failure it calls next with a typed error. DefaultEngine leaves
// ctx.Response untouched when it fails.
type ClientEngine interface {
	Connect(ctx *RequestContext, next func(err error))
}
