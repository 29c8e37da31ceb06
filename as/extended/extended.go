// Package extended defines the ActivityStreams 2.0 extended vocabulary:
// activity, object and link types built on the core facets of package as.
//
// Importing the package registers its facets in typemap.Global().
package extended

import (
	"github.com/teranos/astypes/typemap"
)

func init() {
	r := typemap.Global()
	registerActivities(r)
	registerObjects(r)
	registerLinks(r)
}
