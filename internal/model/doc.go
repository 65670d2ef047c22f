// Package model defines the project document schema shared by all
// pipeline tools.
//
// A Project is the unit of storage and transfer: one JSON file holding
// project metadata plus arrays of cards, packs and encounter sets. The
// recognized fields of each entity are typed explicitly; anything else
// found in the source JSON is preserved in a residual Extra map so that
// unrecognized fields survive a load/mutate/save round trip untouched.
//
// The package also defines Bag, the recursive node type of a Tabletop
// Simulator scene export, used by the ID reconciliation tool.
//
// Documents are always written pretty-printed with two-space indentation
// and without HTML escaping, matching the files the pipeline was built
// around.
package model
