// Package api implements the dockyard layout HTTP service.
//
// The service exposes named layouts stored in a [store.Store] over a small
// JSON API, so multiple frontends can share perspectives:
//
//	GET    /healthz              liveness probe
//	GET    /v1/layouts           list layout names
//	GET    /v1/layouts/{name}    fetch a layout document
//	PUT    /v1/layouts/{name}    validate and store a layout document
//	DELETE /v1/layouts/{name}    delete a layout
//
// Uploaded documents are parsed and validated with [persist.Unmarshal]
// before they reach the store, so the store never holds a layout the
// engine would refuse to restore.
//
// Errors are returned as JSON envelopes carrying the machine-readable
// codes from [pkg/errors].
//
// [store.Store]: github.com/matzehuels/dockyard/pkg/store
// [persist.Unmarshal]: github.com/matzehuels/dockyard/pkg/persist
// [pkg/errors]: github.com/matzehuels/dockyard/pkg/errors
package api
