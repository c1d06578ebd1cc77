// Package icons maps category ids to sprite icons in public/assets/icons.svg.
package icons

import "strings"

// Icon is a symbol id in the sprite.
type Icon string

const (
	Storefront Icon = "building-storefront"
	Scissors   Icon = "scissors"
	PaintBrush Icon = "paint-brush"
	Heart      Icon = "heart"
	Camera     Icon = "camera"
	Beaker     Icon = "beaker"
	Shield     Icon = "shield-check"
	Bag        Icon = "shopping-bag"
	Desktop    Icon = "computer-desktop"
	Squares    Icon = "squares-2x2"
	Sparkles   Icon = "sparkles"
	Star       Icon = "star"
	Chat       Icon = "chat-bubble"
	Photo      Icon = "photo"

	// interface glyphs
	Check       Icon = "check"
	XMark       Icon = "x-mark"
	ArrowRight  Icon = "arrow-right"
	External    Icon = "external"
	WhatsApp    Icon = "whatsapp"
	Moon        Icon = "moon"
	Sun         Icon = "sun"
	Bars        Icon = "bars-3"
	ChevronDown Icon = "chevron-down"

	// Fallback is used for any category without a dedicated icon.
	Fallback = Sparkles
)

var byCategory = map[string]Icon{
	"todos":        Squares,
	"all":          Squares,
	"padaria":      Storefront,
	"restaurantes": Storefront,
	"beleza":       Scissors,
	"cabeleireiro": Scissors,
	"tatuagem":     PaintBrush,
	"petshop":      Heart,
	"saude":        Heart,
	"dentista":     Heart,
	"fotografia":   Camera,
	"fitness":      Beaker,
	"tecnologia":   Shield,
	"agropecuaria": Beaker,
	"comercio":     Bag,
	"digital":      Desktop,
}

// For returns the icon for a category id. It is total: unknown ids get Fallback.
func For(categoryID string) Icon {
	if icon, ok := byCategory[strings.ToLower(strings.TrimSpace(categoryID))]; ok {
		return icon
	}
	return Fallback
}

// Named returns a sprite icon by name, or Fallback for unknown names.
func Named(name string) Icon {
	icon := Icon(strings.TrimSpace(name))
	switch icon {
	case Storefront, Scissors, PaintBrush, Heart, Camera, Beaker, Shield, Bag, Desktop, Squares, Sparkles, Star, Chat, Photo,
		Check, XMark, ArrowRight, External, WhatsApp, Moon, Sun, Bars, ChevronDown:
		return icon
	}
	return Fallback
}
