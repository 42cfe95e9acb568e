// Command httpcall-probe sends one configurable request and reports its
// outcome, for ad-hoc diagnosis of a target endpoint from the shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/relaycore/httpcall"
	"github.com/relaycore/httpcall/action"
	"github.com/relaycore/httpcall/message"
	"github.com/relaycore/httpcall/uri"
)

func main() {
	var (
		method  = flag.String("method", "GET", "HTTP method")
		target  = flag.String("url", "", "target URL (required)")
		header  = flag.String("header", "", "extra header as Name:Value, repeatable via comma")
		verbose = flag.Bool("v", false, "log lifecycle events to stderr")
	)
	flag.Parse()

	if *target == "" {
		fmt.Fprintln(os.Stderr, "httpcall-probe: -url is required")
		os.Exit(2)
	}

	parsed, err := uri.Parse(*target)
	if err != nil {
		fail("parse target: %v", err)
	}
	methodValue, err := message.ParseMethod(strings.ToUpper(*method))
	if err != nil {
		fail("parse method: %v", err)
	}

	builder := httpcall.NewRequest(methodValue, parsed)
	for _, pair := range strings.Split(*header, ",") {
		name, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		builder.Header(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	req, err := builder.Build()
	if err != nil {
		fail("build request: %v", err)
	}

	client := httpcall.New()
	if *verbose {
		attachVerboseLogging(client)
	}

	start := time.Now()
	call, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		fail("request failed after %s: %v", elapsed, err)
	}

	fmt.Printf("%s %s (%s)\n", call.Response.Line.Code, call.Response.Line.Reason, elapsed)
	call.Response.Headers.Range(func(name, value string) {
		fmt.Printf("%s: %s\n", name, value)
	})
	fmt.Println()
	fmt.Println(string(call.Response.Body.Bytes()))
}

func attachVerboseLogging(client *httpcall.Client) {
	client.On(action.REQUEST, func(name string, param any) { fmt.Fprintln(os.Stderr, "-> request") })
	client.On(action.RESPONSE, func(name string, param any) { fmt.Fprintln(os.Stderr, "<- response") })
	client.On(action.DISCONNECTED, func(name string, param any) { fmt.Fprintln(os.Stderr, "!! disconnected") })
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "httpcall-probe: "+format+"\n", args...)
	os.Exit(1)
}
