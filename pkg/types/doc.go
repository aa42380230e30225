// Package types defines the entity contract, the concrete model types, the
// type catalog, and the standard errors for the hbnb object registry.
//
// Every persisted object is a BaseModel: a UUID, two timestamps, and an
// ordered set of dynamic fields. Concrete types (User, Place, ...) are
// BaseModels with their own type name and a schema of typed defaults that
// drives value coercion. Objects convert to and from Record, the ordered
// JSON-compatible form used on disk and as reconstruction input.
package types
