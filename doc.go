// Package spt contains the core components of spt, a library for range-partitioning
// coordinate-sorted sparse tensors into contiguous chunks. This root package defines
// types which are employed during the regular use of the library, as well as in the
// extension of the library, and is an excellent overview of spt's key concepts.
package spt
