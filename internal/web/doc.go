// Package web renders a plan.RenderPlan into DOM node descriptors.
//
// Each slot becomes one container node:
//
//	<div class="gallery-item" data-index="0">
//	  <img class="gallery-image" src="/a.jpg" width="200" height="150"/>
//	  <span class="gallery-caption">Cap A</span>
//	</div>
//
// The caption span exists only when the slot has a caption; an empty
// caption yields an empty span. Width and height are written as HTML length
// attributes, whose unit is the CSS pixel, so logical pixels map 1:1.
//
// Render returns descriptors and touches no document. WriteHTML serializes
// descriptors to markup for previews and static output.
package web
