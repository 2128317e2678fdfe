// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

/*
Package supervisor provides process supervision for Slithertag using suture v4.

The tree has two layers so a failing catalog watcher never takes the API down:

	RootSupervisor ("slithertag")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogWatcherService (if CATALOG_WATCH is set)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Cancelling the context passed
to Serve stops every service; services still running after ShutdownTimeout
show up in UnstoppedServiceReport.

Supervisor events (start, failure, backoff) are logged through sutureslog, so
pass a *slog.Logger built on the application logger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

Service wrappers live in the services subpackage.
*/
package supervisor
