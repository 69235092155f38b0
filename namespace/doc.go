// Package namespace implements the scoped registry of user-defined named
// types the model builder threads through recursive construction: a
// persistent linked structure of scopes, each holding a back-reference to
// its parent.
package namespace
