// Package ui hosts star rating controls in a Bubble Tea program.
//
// Core abstractions:
//   - View: A screen region with its own model, update, view (Elm-style)
//   - Panel: A bounded region within a layout that hosts a View
//   - Layout: Arranges panels
//   - RatingView: Draws a rating.Control and turns mouse press/drag into gestures
//   - AppModel: The demo host stacking one RatingView per configured rating
package ui
