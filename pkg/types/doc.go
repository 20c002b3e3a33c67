// Package types defines the ContactStore interface, the Contact and Outcome
// types, configuration, and the standard errors for the rolodex module.
package types
