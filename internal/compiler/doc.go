// Package compiler wires the gallery pipeline together:
//
//	records -> gallery.Validate -> plan.Build -> web or native adapter
//
// A Compiler holds only immutable configuration. Compile keeps no state
// between calls, so the same input and target always produce structurally
// equal output, and concurrent calls need no coordination. CompileAll runs
// a batch of independent jobs on a bounded worker group.
package compiler
