// Package ferinth provides the primary entry point for constructing a
// Modrinth V2 API client that implements the modrinth.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of
// the resource interfaces and types defined in the modrinth package. Most
// applications should import ferinth to build a client, then use the
// returned modrinth.Client to access resource-specific clients, for
// example Projects(), Versions(), Users(), etc.
//
// Quick start
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
//
//	  // Minimal: identify your application and use the production API.
//	  cli, err := ferinth.New(&modrinth.Config{
//	    AppName:    "my-launcher",
//	    AppVersion: "1.0.0",
//	    AppContact: "contact@example.com",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a personal access token for authenticated calls:
//	  cli, err = ferinth.New(&modrinth.Config{
//	    Token: "mrp_...", // sent raw, no "Bearer" prefix
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the modrinth.Client interface
//	  project, err := cli.Projects().Get(ctx, "sodium")
//	  if err != nil { log.Fatal(err) }
//	  _ = project
//	}
//
// # Endpoints
//
// When Config.APIEndpoint is empty the client targets the production API
// at https://api.modrinth.com/v2. A custom endpoint is normalized by
// trimming a trailing slash and prefixing "https://" when no scheme is
// given; anything that still does not parse as a URL is rejected at
// construction with modrinth.ErrInvalidEndpoint.
//
// # Helpers
//
// The package also provides convenience constructors NewDefault,
// NewWithToken, and NewStaging that wrap New with the appropriate
// configuration.
package ferinth
