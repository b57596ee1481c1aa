package component

import "image/color"

type Sprite struct {
	Color color.Color
}

var SpriteComponent = NewComponent[Sprite]()
