/*
Package metapatch reconciles sparse metadata update requests against
cloud storage resources.

Given the current server-side metadata of a bucket or object and a
user-supplied patch, it resolves every field with tri-state semantics
(untouched, set, explicitly cleared), reconciles access control lists
and label maps, applies precedence rules for compression-derived
fields, and computes the wire field paths that must be force-included
in the outgoing request despite empty or null values.

Transport, authentication and serialization are left to the caller:
the packages under pkg/ hand back a fully resolved metadata value and
a force-include path list, nothing more.
*/
package metapatch
