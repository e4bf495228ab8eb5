// Package fsroute provides a filesystem-convention HTTP router: a directory
// tree of specially named files is scanned and assembled into a dispatchable
// http.Handler.
//
// # File conventions
//
// Path components under the scanned root map to URL segments:
//
//   - name       literal segment, matched verbatim
//   - [name]     dynamic parameter, matches exactly one component
//   - [[name]]   optional parameter, matches zero or one component
//   - [...name]  rest parameter, greedily matches one or more trailing components
//
// A route is terminated by a handle file named +server.{ts,tsx,js,jsx} (an
// API route exporting per-method handlers and/or a catch-all default) or
// +page.{ts,tsx,js,jsx} (a GET-only page whose default export resolves to the
// page body).
//
// # Key components
//
//   - ParseSegments / ParseRoute: the segment grammar parser
//   - DispatchPattern: path segments → router pattern string
//   - Builder: directory walk, module validation, and router assembly over
//     three capabilities: DirLister, ModuleLoader, and Registrar
//
// # Example usage
//
//	loader, _ := modules.NewRegistry("./routes")
//	loader.Register("api/health/+server.ts", fsroute.Module{
//	    "GET": func(w http.ResponseWriter, r *http.Request) {
//	        w.WriteHeader(http.StatusOK)
//	    },
//	})
//
//	b := fsroute.NewBuilder(filesystem.NewLister(), loader)
//	router, err := b.Build(ctx, "./routes", httproute.NewRegistry(nil))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":8080", router)
//
// See the filesystem, modules, and httproute packages for the production
// implementations of the three capabilities.
package fsroute
