package yaml

import "github.com/ycollier/yamlstream/internal/resolve"

// Resolver classifies a plain scalar's implicit tag from its content.
// Parse does not call a Resolver itself — it reports each scalar's tag
// as empty when none was given explicitly — callers that need core
// schema tag resolution apply one to SCALAR events themselves.
type Resolver = resolve.Resolver

// StandardResolver implements the YAML core schema's plain-scalar
// resolution rules (null/bool/merge keywords, float sentinels,
// int/float/timestamp-shaped patterns), defaulting to !!str.
type StandardResolver = resolve.Standard

// ShortTag converts a "tag:yaml.org,2002:foo"-style URI to "!!foo".
func ShortTag(tag string) string { return resolve.ShortTag(tag) }

// LongTag converts a "!!foo" short tag to its full URI.
func LongTag(tag string) string { return resolve.LongTag(tag) }
