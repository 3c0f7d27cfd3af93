// Package core provides the business logic of the asset tracker.
//
// This package holds the domain operations independent of any transport.
// The HTTP server and the assetctl CLI both drive it.
//
// # Entities
//
// Every managed entity (licenses, equipment, printers...) is described by an
// [EntityDefinition] registered in a [Registry]: its store collection, its
// form fields, and optionally an import schema with the post-import filter
// and defaults. The catalog itself lives in package entities:
//
//	reg := core.NewRegistry()
//	reg.Register(core.EntityDefinition{
//	    Info:   core.EntityInfo{Key: "cameras", Group: "Infraestrutura", Label: "Câmeras", File: "cameras.json"},
//	    Fields: []string{"nome", "ip"},
//	    Schema: importer.MustSchema(importer.Field{Name: "nome"}, importer.Field{Name: "ip"}),
//	    Accept: core.RequireAny("nome", "ip"),
//	})
//
// # Import
//
// [Service.Import] reads a CSV or XLSX file, maps its headers onto the schema
// (see package importer), drops records rejected by Accept, fills Defaults,
// and creates one record per remaining row. Imports run under an
// [UploadLimiter] and a timeout; cancellation is checked between writes.
// [Service.AnalyzeHeaders] reports the header scores without importing.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each category has a code for support reference: FILE (file format and
// size), STORE (persistence), REC (records), ENT and IMP (entity
// configuration), REQ (malformed requests), UPL (concurrency and
// cancellation).
package core
