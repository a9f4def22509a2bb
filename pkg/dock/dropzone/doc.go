// Package dropzone resolves drop targets during drag-and-drop gestures.
//
// The resolver is a pure function of the pointer position, the current
// layout trees, and the dragged item. It walks the containers' screen-space
// geometry to find the innermost area under the pointer, classifies the
// position into a drop zone, and produces an advisory [Plan] describing the
// exact mutation a commit would apply. Resolving never mutates any tree;
// committing a plan is a separate explicit step owned by the docking
// manager.
//
// # Zones
//
// Within an area the pointer lands in one of five zones: the outer quarter
// of each axis triggers a directional split zone, the remainder is the
// center (tab merge) zone, and a configurable band at the top of the area
// acts as the tab strip, merging at a specific tab index. When the pointer
// is inside a container but outside every area, container-level "outer"
// zones split the whole root instead of a leaf area.
//
// The edge and tab-strip thresholds are policy, not structure: they are
// carried in [Config] and can be tuned per host.
package dropzone
