// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Navigation targets returned in redirect outcomes.
const (
	PathHome  = "/"
	PathLogin = "/login"
)

// OutcomeKind tags the variant held by an [Outcome].
type OutcomeKind int

const (
	// OutcomeRedirect asks the caller to navigate to Outcome.Target.
	OutcomeRedirect OutcomeKind = iota + 1
	// OutcomeResponse carries a server response in Outcome.Response.
	OutcomeResponse
	// OutcomeError asks the caller to show Outcome.Message.
	OutcomeError
)

// String implements [fmt.Stringer].
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRedirect:
		return "redirect"
	case OutcomeResponse:
		return "response"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the navigation intent produced by session operations. The
// session client never drives the UI itself; the caller decides how to act
// on the returned value.
type Outcome struct {
	Kind     OutcomeKind
	Target   string
	Message  string
	Response *Response
}

// Redirect builds a redirect outcome to target.
func Redirect(target string) Outcome {
	return Outcome{Kind: OutcomeRedirect, Target: target}
}

// RespondWith builds a response outcome.
func RespondWith(resp *Response) Outcome {
	return Outcome{Kind: OutcomeResponse, Response: resp}
}

// ShowError builds an error outcome carrying a user-visible message.
func ShowError(message string) Outcome {
	return Outcome{Kind: OutcomeError, Message: message}
}

// IsRedirect reports whether o is a redirect to target.
func (o Outcome) IsRedirect(target string) bool {
	return o.Kind == OutcomeRedirect && o.Target == target
}
