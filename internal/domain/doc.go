// Package domain contains the core domain model for the Pokédex.
//
// The domain is transport- and persistence-agnostic: it does not depend on GraphQL,
// net/http, or the filesystem. Infra/adapters map into/from these types.
package domain
