package entity

// Template is a user-authored paragraph template. The content uses the flat
// {{ variable }} grammar; unknown variables render as empty strings, so a
// stored template can never make a render fail.
type Template struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Lang      string `gorm:"not null"`
	Kind      string `gorm:"not null"` // CORPORATE or INDIVIDUAL
	Content   string `gorm:"not null"`
	CreatedBy string `gorm:"index"` // token subject of the author
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null"`
}
