// Package optional provides Optional, a container that is either empty or holds
// exactly one non-nil value.
package optional
