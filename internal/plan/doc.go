// Package plan builds the RenderPlan, the platform-neutral intermediate form
// every render target consumes.
//
// Pipeline position:
//  1. gallery.Validate: raw records -> gallery.Spec
//  2. plan.Build: gallery.Spec -> RenderPlan (this package)
//  3. a target adapter (web, native): RenderPlan -> target instructions
//
// A RenderPlan is an order-preserving projection of the Spec: one Slot per
// image, Slot.Index equal to its position, no fields added or dropped. It
// carries no knowledge of any render target. Adapters read only the plan,
// so a source or caption is written once no matter how many targets render
// the gallery.
package plan
