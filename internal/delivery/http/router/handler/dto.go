package handler

import (
	"time"

	"koostory/internal/domain/entity"
)

// postResponse is the JSON shape of a blog post in admin API answers.
type postResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     *string   `json:"excerpt"`
	AuthorID    string    `json:"authorId"`
	AuthorEmail string    `json:"authorEmail"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newPostResponse(post *entity.Post) *postResponse {
	return &postResponse{
		ID:          post.ID.String(),
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		Excerpt:     post.Excerpt,
		AuthorID:    post.AuthorID,
		AuthorEmail: post.AuthorEmail,
		Published:   post.Published,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// translateResponse mirrors the DeepL answer the site's scripts expect.
type translateResponse struct {
	TranslatedText     string `json:"translatedText"`
	DetectedSourceLang string `json:"detectedSourceLang"`
}

// sendEmailRequest is the body of POST /api/send-email.
type sendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=998"`
	Text    string `json:"text" validate:"required_without=HTML"`
	HTML    string `json:"html"`
	Tag     string `json:"tag" validate:"omitempty,max=100"`
}

func (r *sendEmailRequest) toMessage() *entity.EmailMessage {
	return &entity.EmailMessage{
		To:       r.To,
		Subject:  r.Subject,
		TextBody: r.Text,
		HTMLBody: r.HTML,
		Tag:      r.Tag,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}
