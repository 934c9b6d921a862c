// Package id provides the random token source used across uuidgen.
//
// Every identifier shown to a user starts life as a canonical RFC 4122
// version 4 token produced here:
//
//   - UUID: 36-character lowercase hyphenated v4 token
//   - Provider: a pluggable token source, so callers can be driven by a
//     fixed or scripted sequence in tests
//
// Randomness comes from github.com/google/uuid, which reads crypto/rand.
package id
