// Package modrinth provides types, interfaces, and helpers for working with
// the Modrinth V2 API.
//
// # Overview
//
// The modrinth package defines the domain types (e.g., Project, Version,
// User, Notification) and the interfaces for resource-oriented clients
// (e.g., ProjectsClient, VersionsClient). A concrete implementation of
// these clients is provided by the ferinth package, which wires
// configuration, transport, and authentication. Most consumers should
// import ferinth to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/HelixLauncher/ferinth/pkg/ferinth"
//	  "github.com/HelixLauncher/ferinth/pkg/modrinth"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ferinth.New(&modrinth.Config{AppName: "my-launcher", AppVersion: "1.0.0"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Fetch a project by ID or slug
//	  project, err := cli.Projects().Get(ctx, "sodium")
//	  if err != nil { log.Fatal(err) }
//	  _ = project
//	}
//
// # Identifiers
//
// Every lookup takes a project/version/user ID or slug. Identifiers are
// validated locally with ValidateID before any request is sent; an
// InvalidIdentifierError means no network traffic happened.
//
// # Queries
//
// Use QueryParams to build request query strings. List and boolean values
// are encoded as compact JSON text, matching what the Modrinth API expects
// for parameters like "ids", "loaders", and "featured".
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common
// cases, and TransportError/DecodeError distinguish network failures from
// malformed response bodies.
//
// # Batch fetching
//
// Endpoints with a server-side batch route (projects, versions, users)
// resolve any number of IDs in one request via GetMultiple. For listings
// that are one request per item, BatchFetcher fans out the calls with a
// bounded concurrency limit.
package modrinth
