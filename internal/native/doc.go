// Package native renders a plan.RenderPlan into the descriptor a native
// list/grid adapter binds its views from: a column count plus one item per
// slot, in slot order.
//
// Nothing here decodes images, fetches data or creates views.
package native
