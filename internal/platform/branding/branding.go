// Package branding centralizes product naming and visual identity shared by
// the website templates and the asset tools.
package branding

// AppName is the public product name.
const AppName = "Murmur"

// Domain is the canonical host for absolute URLs, feeds and metadata.
const Domain = "murmur.app"

// Tagline is the default page description when no page-specific copy exists.
const Tagline = "Dictation that keeps up with you"

// TwitterHandle is the product account referenced by Twitter card metadata.
const TwitterHandle = "@murmurapp"

// Brand palette. GreenHex is the logo microphone color that the icon tool
// targets; InkHex and PaperHex back the social cards.
const (
	GreenHex = "#22c55e"
	InkHex   = "#0b1120"
	PaperHex = "#f8fafc"
)
