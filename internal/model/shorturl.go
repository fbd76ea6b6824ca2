package model

import (
	"time"
)

// ShortURL represents a short URL record
type ShortURL struct {
	ID           int64      `json:"-" gorm:"primaryKey;autoIncrement"`
	Code         string     `json:"code" gorm:"type:varchar(32);uniqueIndex;not null"`
	Label        string     `json:"label" gorm:"type:varchar(255);not null"`
	LongURL      string     `json:"longUrl" gorm:"type:varchar(2048);not null"`
	ExpiresAt    *time.Time `json:"expiresAt" gorm:"index"`
	ClickCount   int64      `json:"clickCount" gorm:"not null;default:0"`
	LastAccessAt *time.Time `json:"lastAccessAt"`
	CreatedBy    string     `json:"createdBy" gorm:"type:varchar(320);index;not null"`
	UpdatedBy    string     `json:"updatedBy" gorm:"type:varchar(320);not null"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName returns the table name for ShortURL
func (ShortURL) TableName() string {
	return "short_urls"
}

// ExpiredAt reports whether expiresAt is set and not after now
func ExpiredAt(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && !expiresAt.After(now)
}

// ShortURLChanges holds the full set of mutable columns written by an update
type ShortURLChanges struct {
	Label     string
	LongURL   string
	ExpiresAt *time.Time
	UpdatedBy string
}

// CreateURLRequest represents the body of POST /api/url
type CreateURLRequest struct {
	Label     string       `json:"label"`
	LongURL   string       `json:"longUrl"`
	ExpiresAt OptionalTime `json:"expiresAt"`
	Email     string       `json:"email"`
}

// UpdateURLRequest represents the body of PUT /api/url
type UpdateURLRequest struct {
	Code      string       `json:"code"`
	Label     *string      `json:"label"`
	LongURL   *string      `json:"longUrl"`
	ExpiresAt OptionalTime `json:"expiresAt"`
}

// DeleteURLRequest represents the body of DELETE /api/url
type DeleteURLRequest struct {
	Code string `json:"code" binding:"required,shortcode"`
}

// CreateInput carries the fields of a new record
type CreateInput struct {
	Label     string
	LongURL   string
	ExpiresAt *time.Time
	CreatedBy string
}

// UpdateInput carries a partial update. Nil pointers and an unset
// ExpiresAt leave the stored values untouched.
type UpdateInput struct {
	Code      string
	Label     *string
	LongURL   *string
	ExpiresAt OptionalTime
	UpdatedBy string
}
