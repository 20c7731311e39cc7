package assets

import (
	"image/color"
	"log"
	"math"

	"grimoire/pkg/items"
	"grimoire/pkg/shared/components"
	"grimoire/pkg/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const iconSize = 48

var images = make(map[string]*ebiten.Image)

// Load generates the sprites of every registered spell, modifier and item
// plus the slot placeholders and tab icons.
func Load() {
	for id, spell := range components.SpellRegistry {
		images["spell_"+string(id)] = orb(spell.Color)
		images["tab_"+spell.School.String()] = badge(spell.Color, initial(spell.School.String()))
	}
	images["tab_"+components.SchoolNone.String()] = badge(ui.ColorHint, "+")
	for _, t := range components.ModifierTypes {
		images["modifier_"+t.String()] = gem(modifierColor(t))
	}
	for id, def := range items.Registry {
		images["item_"+id] = badge(categoryColor(def.Type.Category()), initial(def.Name))
	}
	for _, c := range items.Categories {
		images["tab_"+c.String()] = badge(categoryColor(c), initial(c.String()))
	}
	for _, slot := range components.EquipmentSlots {
		images["placeholder_"+slot.String()] = placeholder(initial(slot.String()))
	}
	log.Printf("Assets generated (%d sprites).", len(images))
}

func GetImage(name string) *ebiten.Image {
	return images[name]
}

func orb(clr color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	const c = iconSize / 2
	vector.DrawFilledCircle(img, c, c, c-4, clr, true)
	vector.DrawFilledCircle(img, c-6, c-6, 6, color.RGBA{255, 255, 255, 140}, true)
	return img
}

// gem is a square turned on its corner.
func gem(clr color.RGBA) *ebiten.Image {
	const side = 28
	square := ebiten.NewImage(side, side)
	square.Fill(clr)
	vector.DrawFilledRect(square, 3, 3, 8, 8, color.RGBA{255, 255, 255, 120}, false)

	img := ebiten.NewImage(iconSize, iconSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-side/2, -side/2)
	op.GeoM.Rotate(math.Pi / 4)
	op.GeoM.Translate(iconSize/2, iconSize/2)
	op.Filter = ebiten.FilterLinear
	img.DrawImage(square, op)
	return img
}

func modifierColor(t components.ModifierType) color.RGBA {
	switch t {
	case components.ModifierDamage:
		return color.RGBA{220, 40, 40, 255}
	case components.ModifierSpeed:
		return color.RGBA{250, 220, 60, 255}
	case components.ModifierCount:
		return color.RGBA{60, 200, 90, 255}
	case components.ModifierReflect:
		return color.RGBA{200, 200, 220, 255}
	case components.ModifierRange:
		return color.RGBA{70, 120, 230, 255}
	case components.ModifierDuration:
		return color.RGBA{160, 80, 200, 255}
	default:
		return color.RGBA{240, 140, 40, 255}
	}
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return "?"
}

func badge(clr color.Color, letter string) *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	vector.DrawFilledRect(img, 4, 4, iconSize-8, iconSize-8, clr, true)
	vector.StrokeRect(img, 4, 4, iconSize-8, iconSize-8, 2, color.RGBA{0, 0, 0, 160}, true)
	ebitenutil.DebugPrintAt(img, letter, iconSize/2-3, iconSize/2-8)
	return img
}

func placeholder(letter string) *ebiten.Image {
	img := ebiten.NewImage(iconSize, iconSize)
	vector.StrokeRect(img, 6, 6, iconSize-12, iconSize-12, 1, ui.ColorSlotBorder, false)
	ebitenutil.DebugPrintAt(img, letter, iconSize/2-3, iconSize/2-8)
	return img
}

func categoryColor(c items.Category) color.RGBA {
	switch c {
	case items.CategoryEquipment:
		return color.RGBA{140, 140, 160, 255}
	case items.CategoryConsumable:
		return color.RGBA{200, 60, 60, 255}
	case items.CategoryDocument:
		return color.RGBA{210, 190, 140, 255}
	case items.CategoryQuest:
		return color.RGBA{220, 170, 40, 255}
	case items.CategoryKey:
		return color.RGBA{180, 150, 60, 255}
	default:
		return color.RGBA{110, 110, 110, 255}
	}
}

var textCache = make(map[string]*ebiten.Image)

// TextImage returns s rendered in white with the debug font.
func TextImage(s string) *ebiten.Image {
	if img, ok := textCache[s]; ok {
		return img
	}
	if len(textCache) > 1024 {
		for k, img := range textCache {
			img.Deallocate()
			delete(textCache, k)
		}
	}
	w, h := 1, 1
	line := 0
	for _, r := range s {
		if r == '\n' {
			h++
			line = 0
			continue
		}
		line++
		w = max(w, line)
	}
	img := ebiten.NewImage(w*int(ui.GlyphWidth), h*int(ui.LineHeight))
	ebitenutil.DebugPrint(img, s)
	textCache[s] = img
	return img
}
