// Package urlcodec implements the percent-decoder used for request
// targets and form bodies, including reconstruction of multi-byte
// UTF-8 characters from runs of adjacent escapes.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.1
package urlcodec
