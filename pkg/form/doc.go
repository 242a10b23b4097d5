// Package form wires a sheet declaration into a live Controller: the
// dropdown registry, the text inputs, the validation engine, the status slot
// and the payload builder. The Controller is the only owner of that state and
// serialises every handler, so each user action is applied atomically.
//
// Construction always ends with ResetAll, which puts every widget in its
// documented initial state (sheet type on its first option, layout on
// "4 Per Row", everything else empty).
package form
