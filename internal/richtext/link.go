package richtext

import (
	"errors"
	"fmt"
)

// Link target types as used on the wire.
const (
	LinkTypeDocument = "Link.document"
	LinkTypeWeb      = "Link.web"
	LinkTypeFile     = "Link.file"
	LinkTypeImage    = "Link.image"
)

// ErrUnresolvableLink is returned when a link target yields no usable URL.
var ErrUnresolvableLink = errors.New("unresolvable link")

// DocumentRef identifies a document inside the content repository.
type DocumentRef struct {
	ID   string   `json:"id"`
	UID  string   `json:"uid,omitempty"`
	Type string   `json:"type"`
	Tags []string `json:"tags,omitempty"`
	Slug string   `json:"slug,omitempty"`
	Lang string   `json:"lang,omitempty"`
}

// FileRef is the payload of a file link.
type FileRef struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Kind string `json:"kind,omitempty"`
	Size string `json:"size,omitempty"`
}

// ImageRef is the payload of an image link.
type ImageRef struct {
	URL        string     `json:"url"`
	Alt        string     `json:"alt,omitempty"`
	Dimensions Dimensions `json:"dimensions,omitzero"`
}

// LinkTarget is the destination of a hyperlink span or a linked image. Type
// selects which of the payload fields is meaningful.
type LinkTarget struct {
	Type string

	Document DocumentRef
	Broken   bool
	WebURL   string
	File     FileRef
	Image    ImageRef
}

// LinkResolver turns a document reference into a URL. It is the plain
// function form of the link-resolving collaborator.
type LinkResolver func(doc DocumentRef, broken bool) string

// LinkContext is the legacy form of the link-resolving collaborator: a
// context object exposing a LinkResolver method.
type LinkContext interface {
	LinkResolver(doc DocumentRef, broken bool) string
}

// ContextResolver normalizes a legacy link context into a LinkResolver.
func ContextResolver(ctx LinkContext) LinkResolver {
	if ctx == nil {
		return nil
	}
	return ctx.LinkResolver
}

// URL returns the destination of the link. Document links are handed to
// resolve; web, file and image links carry their URL.
func (t *LinkTarget) URL(resolve LinkResolver) (string, error) {
	if t == nil {
		return "", fmt.Errorf("%w: no target", ErrUnresolvableLink)
	}
	var url string
	switch t.Type {
	case LinkTypeDocument:
		if resolve == nil {
			return "", fmt.Errorf("%w: no resolver for document %q", ErrUnresolvableLink, t.Document.ID)
		}
		url = resolve(t.Document, t.Broken)
	case LinkTypeWeb:
		url = t.WebURL
	case LinkTypeFile:
		url = t.File.URL
	case LinkTypeImage:
		url = t.Image.URL
	default:
		return "", fmt.Errorf("%w: unsupported link type %q", ErrUnresolvableLink, t.Type)
	}
	if url == "" {
		return "", fmt.Errorf("%w: empty url for %s", ErrUnresolvableLink, t.Type)
	}
	return url, nil
}
