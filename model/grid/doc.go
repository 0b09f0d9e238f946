// Package grid models the rectangular cell lattice of a crossbar qubit
// array.  A Cell is a (row, column) coordinate; a Site is the stable integer
// address of a cell, independent of whichever qubit currently occupies it.
// The two addressings are bijective through a Grid value.
package grid
