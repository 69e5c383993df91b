// Package ui draws the optional status overlay. It is only built with the
// ebiten tag.
package ui
