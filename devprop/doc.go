// Package devprop describes device and class properties as reported by the
// Windows configuration manager: property keys (DEVPROPKEY), type tags
// (DEVPROPTYPE) and raw property buffers, together with a decoder that turns
// a tagged buffer into a Go value.
//
// The package does no system calls and builds on every platform.
package devprop
