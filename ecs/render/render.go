// Package render draws the projected world with ebiten. It only reads
// Transform, shape and Sprite components; simulation state is never touched.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

var pixel *ebiten.Image

func pixelImage() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

type RenderSystem struct {
	camEntity  ecs.Entity
	background color.Color
}

func NewRenderSystem(background color.Color) *RenderSystem {
	if background == nil {
		background = color.Black
	}
	return &RenderSystem{background: background}
}

// Draw fills the background and draws every sprite as a solid box of its
// current visual size, lowest depth first.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.background)

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraTagComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	var cam cp.Vector
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		cam = cp.Vector{X: camTransform.X, Y: camTransform.Y}
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ti, _ := ecs.Get(w, entities[i], component.TransformComponent.Kind())
		tj, _ := ecs.Get(w, entities[j], component.TransformComponent.Kind())
		return ti.Depth < tj.Depth
	})

	img := pixelImage()
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		size, ok := drawSize(w, e)
		if !ok || s.Color == nil {
			continue
		}

		sx, sy := common.WorldToScreen(cp.Vector{X: t.X, Y: t.Y}, cam, zoom)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size.X*zoom, size.Y*zoom)
		op.GeoM.Translate(-size.X*zoom/2, -size.Y*zoom/2)
		// world angles are counter-clockwise with y up
		op.GeoM.Rotate(-t.Rotation)
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(s.Color)
		screen.DrawImage(img, op)
	}
}

func drawSize(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if vs, ok := ecs.Get(w, e, component.VisualShapeComponent.Kind()); ok {
		return vs.Size, true
	}
	if s, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
		return s.Size, true
	}
	return cp.Vector{}, false
}
