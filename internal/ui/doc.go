// Package ui renders git command lifecycle events for operators following a
// promotion run on the console.
package ui
