// Package store implements the prompt.Store contract for the two supported
// backends: a local directory of *.j2 files and a Supabase table reached
// through PostgREST.
package store
