package models

import (
	"time"
)

// Article rows are immutable from the serving path; the upload endpoint
// replaces the whole table inside one transaction.
type Article struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Key           string    `json:"key" gorm:"type:text;index:article_key,unique"`
	Title         string    `json:"title" gorm:"type:text"`
	Content       string    `json:"content" gorm:"type:text"`
	Excerpt       string    `json:"excerpt" gorm:"type:text"`
	PublishedDate string    `json:"publishedDate" gorm:"type:text"`
	Author        string    `json:"author" gorm:"type:text"`
	SourceURL     string    `json:"sourceUrl" gorm:"type:text"`
	CDate         time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// Business categories are stored as a JSON-encoded array in a text column.
type Business struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	Title       string    `json:"title" gorm:"type:text"`
	Address     string    `json:"address" gorm:"type:text"`
	Phone       string    `json:"phone" gorm:"type:text"`
	Website     string    `json:"website" gorm:"type:text"`
	Email       string    `json:"email" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	Categories  string    `json:"categories" gorm:"type:text"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
