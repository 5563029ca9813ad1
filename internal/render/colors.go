package render

import (
	"image/color"

	"github.com/haunter-rpg/battlehud/internal/game"
)

// HUD palette.
var (
	ColorBackdrop     = color.RGBA{18, 14, 28, 255}
	ColorPanel        = color.RGBA{30, 26, 48, 230}
	ColorBorder       = color.RGBA{120, 110, 160, 255}
	ColorCard         = color.RGBA{52, 46, 78, 255}
	ColorCardSelected = color.RGBA{255, 214, 120, 255}
	ColorText         = color.RGBA{235, 235, 240, 255}
	ColorDim          = color.RGBA{130, 130, 150, 255}
	ColorAction       = color.RGBA{120, 220, 235, 255}
	ColorWarning      = color.RGBA{255, 220, 90, 255}
	ColorCritical     = color.RGBA{255, 100, 100, 255}
	ColorDialogue     = color.RGBA{140, 235, 140, 255}
	ColorEnergy       = color.RGBA{90, 200, 255, 255}
	ColorEnemy        = color.RGBA{230, 90, 110, 255}
	ColorTurnEnd      = color.RGBA{200, 160, 255, 255}
)

// MessageColor returns the log color for a priority.
func MessageColor(p game.MsgPriority) color.RGBA {
	switch p {
	case game.MsgAction:
		return ColorAction
	case game.MsgWarning:
		return ColorWarning
	case game.MsgCritical:
		return ColorCritical
	case game.MsgDialogue:
		return ColorDialogue
	default:
		return ColorText
	}
}
