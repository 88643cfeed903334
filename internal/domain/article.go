package domain

import (
	"time"
)

// Article is a catalog entry (product type) identified by a unique code.
// QRPayload is the text encoded in the article's printed QR label; scanners
// send it back verbatim so it must stay unique as well.
type Article struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	QRPayload string    `json:"qr_payload"`
	CreatedAt time.Time `json:"created_at"`
}

// ArticleCreation is the payload expected when registering an article.
type ArticleCreation struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
