//go:build !ebiten

package ui

import "life-ca/internal/core"

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel() *Panel { return nil }

// Update never reports a click in the headless build.
func (p *Panel) Update(int, int, bool, bool) (Button, bool) { return 0, false }

// Captures is always false in the headless build.
func (p *Panel) Captures(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any, core.RunMode, core.Sim) {}
