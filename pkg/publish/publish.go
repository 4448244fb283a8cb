package publish

import (
	"context"
	"strings"
	"time"

	"github.com/0xmhha/snipet/pkg/api"
	"github.com/0xmhha/snipet/pkg/language"
	"github.com/0xmhha/snipet/pkg/logger"
	"github.com/0xmhha/snipet/pkg/session"
)

// Publisher publishes snippets through a Creator.
type Publisher struct {
	creator Creator
	webURL  string
	now     func() time.Time
	logger  logger.Logger
}

// New creates a publisher.
func New(cfg Config, creator Creator, log logger.Logger) *Publisher {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Publisher{
		creator: creator,
		webURL:  cfg.WebURL,
		now:     now,
		logger:  log,
	}
}

// Submission validates a request against a session and builds the payload.
//
// Checks run in this order: title, session, code, visibility. Nothing is
// sent to the backend.
func Submission(sess *session.Session, req Request) (api.SnippetSubmission, error) {
	if strings.TrimSpace(req.Title) == "" {
		return api.SnippetSubmission{}, api.ErrTitleRequired
	}

	if !sess.Valid() {
		return api.SnippetSubmission{}, ErrNotLoggedIn
	}

	if strings.TrimSpace(req.Code) == "" {
		return api.SnippetSubmission{}, api.ErrEmptyCode
	}

	visibility, err := api.ParseVisibility(req.Visibility)
	if err != nil {
		return api.SnippetSubmission{}, err
	}

	lang := req.Language
	if lang == "" {
		lang = language.Detect(req.Filename, req.Code)
	}

	return api.SnippetSubmission{
		Title:       req.Title,
		Code:        req.Code,
		Language:    lang,
		Description: req.Description,
		Visibility:  visibility,
		AuthorID:    sess.SubjectID,
	}, nil
}

// Publish validates the request and creates the snippet.
func (p *Publisher) Publish(ctx context.Context, sess *session.Session, req Request) (*Result, error) {
	sub, err := Submission(sess, req)
	if err != nil {
		return nil, err
	}

	if sess.Expired(p.now()) {
		p.logger.Warn("session token has expired, run login again", "identity", sess.Identity)
	}

	p.logger.Debug("publishing snippet",
		"language", sub.Language,
		"visibility", sub.Visibility,
		"bytes", len(sub.Code))

	record, err := p.creator.CreateSnippet(ctx, sess, sub)
	if err != nil {
		return nil, err
	}

	return &Result{
		Snippet:    *record,
		Language:   sub.Language,
		Visibility: sub.Visibility,
		URL:        SnippetURL(sess.ServerURL, p.webURL, record.ID),
	}, nil
}
