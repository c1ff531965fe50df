// Package model builds the immutable in-memory model of a source
// enumeration from its structural declaration.
//
// Parsing is all-or-nothing for a given enumeration: either a complete
// SourceEnum is returned, or nil together with diagnostics describing every
// problem found. Nothing is read besides the declaration itself.
//
// # Directives
//
// On the enum type:
//
//	//subenum:Dog,Small            declares the subsets Dog and Small
//	//subenum:derive String,Text   requests capabilities for the subsets
//
// On a variant (a constant of a const enum, or a variant type of a union):
//
//	//subenum:Dog,Small            the variant belongs to Dog and Small
//
// Names are separated by commas and/or spaces.
package model
