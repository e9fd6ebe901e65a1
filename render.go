package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/movement"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
)

var defaultBackground = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// renderer draws placeholder sprites for each selector. World units map to
// pixels through pixelsPerUnit, with the origin on the ground line at the
// horizontal center of the screen.
type renderer struct {
	pixelsPerUnit float64
	groundY       float64
	spritePixels  int
	background    color.Color

	colors  map[movement.SpriteSelector]color.Color
	sprites map[movement.SpriteSelector]*ebiten.Image
	ground  *ebiten.Image
}

func newRenderer(spec prefabs.RenderSpec) (*renderer, error) {
	colors, err := spec.SpriteColors()
	if err != nil {
		return nil, err
	}
	r := &renderer{
		pixelsPerUnit: spec.PixelsPerUnit,
		groundY:       spec.GroundY,
		spritePixels:  spec.SpritePixels,
		background:    defaultBackground,
		colors:        colors,
	}
	if spec.Background != nil && spec.Background.Color != nil {
		r.background = spec.Background.Color
	}
	if r.pixelsPerUnit <= 0 {
		r.pixelsPerUnit = 400
	}
	if r.groundY <= 0 {
		r.groundY = baseHeight * 3 / 4
	}
	if r.spritePixels <= 0 {
		r.spritePixels = 32
	}
	return r, nil
}

func (r *renderer) sprite(s movement.SpriteSelector) *ebiten.Image {
	if r.sprites == nil {
		r.sprites = make(map[movement.SpriteSelector]*ebiten.Image, len(r.colors))
	}
	if img, ok := r.sprites[s]; ok {
		return img
	}
	img := ebiten.NewImage(r.spritePixels, r.spritePixels)
	img.Fill(r.colors[s])
	r.sprites[s] = img
	return img
}

func (r *renderer) Draw(screen *ebiten.Image, w *system.World) {
	screen.Fill(r.background)

	if r.ground == nil {
		r.ground = ebiten.NewImage(baseWidth, 4)
		r.ground.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, r.groundY)
	screen.DrawImage(r.ground, op)

	r.drawCharacter(screen, w.Sprite, w.Transform)
}

// drawCharacter maps the unit quad [-1, 1] through the model transform, so
// the sprite spans 2*scale world units and its feet touch the ground at y=0.
func (r *renderer) drawCharacter(screen *ebiten.Image, s movement.SpriteSelector, t movement.Transform) {
	img := r.sprite(s)
	half := float64(r.spritePixels) / 2

	sx := 2 * t.ScaleX * r.pixelsPerUnit / float64(r.spritePixels)
	sy := 2 * t.ScaleY * r.pixelsPerUnit / float64(r.spritePixels)
	if t.FlipX {
		sx = -sx
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(
		baseWidth/2+t.X*r.pixelsPerUnit,
		r.groundY-(t.Y+t.ScaleY)*r.pixelsPerUnit,
	)
	screen.DrawImage(img, op)
}

func (r *renderer) Dispose() {
	for _, img := range r.sprites {
		img.Deallocate()
	}
	r.sprites = nil
	if r.ground != nil {
		r.ground.Deallocate()
		r.ground = nil
	}
}
