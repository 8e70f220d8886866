// Package node provides a navigable tree over decoded configuration
// documents: mappings, lists, and scalars.
//
// Navigation never fails. Reading past a key that was never set yields a
// virtual node whose accessors return zero values. Writing to a virtual
// node materializes its path inside the document:
//
//	root := node.NewRoot()
//	_ = root.Get("database", "port").Set(5432)
//	port := root.Get("database", "port").Int() // 5432
//
// MergeMissing fills values absent from one document from another without
// overwriting anything already present, which is the layering primitive
// used by the resolver.
package node
