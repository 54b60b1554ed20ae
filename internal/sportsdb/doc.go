// Package sportsdb provides a client for the TheSportsDB public API. Only
// the team search endpoint is used. Repeated transport failures trip a
// circuit breaker so that the rest of a batch fails fast instead of waiting
// out the request timeout per team.
package sportsdb
