package action

// Cursor is the "in-flight call" shape CONNECT callbacks expect as their
// parameter. *call.Call satisfies it; it exists as an interface so this
// package does not have to name call.Call directly in the predicate.
type Cursor interface {
	Failed() bool
}

var reConnect = fullmatch(`connect`)
var reConnected = fullmatch(`connected`)
var reDisconnected = fullmatch(`disconnected|not-sent|not-received|malformed|not-parsed`)
var reException = fullmatch(`exception`)
var reRequest = fullmatch(`request`)
var reResponse = fullmatch(`response`)

// ALL matches any event name except "exception"; EXCEPTION must always be
// subscribed explicitly (spec.md §4.3).
var ALL = Action{
	Triggers:  []string{"connect", "connected", "request", "response", "disconnected", "not-sent", "not-received", "malformed", "not-parsed"},
	Predicate: func(name string, _ any) bool { return name != "exception" },
}

// CONNECT matches "connect" whose parameter is a Cursor.
var CONNECT = Typed(TypeTest[Cursor](), reConnect, "connect")

// CONNECTED matches "connected".
var CONNECTED = Regex(reConnected, "connected")

// DISCONNECTED is the superset action covering terminal-failure event
// names: the generic "disconnected" plus each specific failure kind.
var DISCONNECTED = Regex(reDisconnected, "disconnected", "not-sent", "not-received", "malformed", "not-parsed")

// EXCEPTION matches "exception" whose parameter is an error.
var EXCEPTION = Typed(TypeTest[error](), reException, "exception")

// REQUEST matches "request", published once a call enters the pipeline.
var REQUEST = Regex(reRequest, "request")

// RESPONSE matches "response", published once the transport engine returns
// a parsed response, before CONNECTED.
var RESPONSE = Regex(reResponse, "response")
