// Package fastener implements bolted joint calculations after Norton's
// Machine Design: tensile stress area, bolt and member stiffness, the Cornwell
// joint constant, load segregation, and the yield, separation and modified
// Goodman fatigue safety factors.
//
// Every function is pure. Scalar entry points take float64 values; the
// Series variants evaluate the same kernels elementwise, broadcasting
// length-one series against longer ones. Units are never converted: callers
// use one consistent unit family per call and pass a UnitSystem wherever a
// formula depends on it.
package fastener
