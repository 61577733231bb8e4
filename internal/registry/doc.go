// Package registry maps backend names to the factories that build them.
//
// Backends live in their own packages under modules/ and register
// themselves through the Module interface at composition time. The
// application picks one by name; the generator never inspects which
// concrete backend it is driving.
package registry
