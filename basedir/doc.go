// Package basedir resolves the base configuration directory for an owner
// namespace.
//
// The resolver never decides where configuration lives; the host program
// does, by choosing a Provider. Static and Flat cover hosts that manage a
// configuration root themselves, OS follows the platform's user
// configuration directory convention.
package basedir
