package app

import (
	"github.com/specialistvlad/autoperm/internal/registry"
	"github.com/specialistvlad/autoperm/modules/listing"
	"github.com/specialistvlad/autoperm/modules/tape"
)

// coreModules is the definitive list of all backends that are compiled into
// the autoperm binary.
var coreModules = []registry.Module{
	&tape.Module{},
	&listing.Module{},
}
