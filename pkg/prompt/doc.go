// Package prompt defines the core contracts shared by the prompt loading
// pipeline: the raw payload a store returns, the compiled Template handed to
// callers, template metadata, and the static variable analysis used for
// strict rendering and introspection.
package prompt
