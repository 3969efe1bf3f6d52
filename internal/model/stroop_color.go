package model

// StroopColor is immutable reference data: a locale-specific color name and
// the hex code rendered for it. Seeded once, never mutated by the serving path.
type StroopColor struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `json:"name" gorm:"size:20;not null;uniqueIndex"`
	HexCode string `json:"hex_code" gorm:"size:7;not null"` // "#RRGGBB"
}
