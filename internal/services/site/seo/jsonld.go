package seo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/murmurhq/website/internal/platform/branding"
)

const schemaContext = "https://schema.org"

// QAItem is one question/answer pair for FAQPage structured data.
type QAItem struct {
	Question string
	Answer   string
}

// Crumb is one entry in BreadcrumbList structured data.
type Crumb struct {
	Name string
	URL  string
}

// BlogPostingParams describes one article for BlogPosting structured data.
type BlogPostingParams struct {
	Headline      string
	Description   string
	URL           string
	DatePublished string
	DateModified  string
	AuthorName    string
	Locale        string
}

type organizationDoc struct {
	Context string `json:"@context"`
	Type    string `json:"@type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Logo    string `json:"logo"`
}

type offerDoc struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

type softwareApplicationDoc struct {
	Context             string   `json:"@context"`
	Type                string   `json:"@type"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	URL                 string   `json:"url"`
	ApplicationCategory string   `json:"applicationCategory"`
	OperatingSystem     string   `json:"operatingSystem"`
	InLanguage          []string `json:"inLanguage"`
	Offers              offerDoc `json:"offers"`
}

type answerDoc struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type questionDoc struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer answerDoc `json:"acceptedAnswer"`
}

type faqPageDoc struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []questionDoc `json:"mainEntity"`
}

type personDoc struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type blogPostingDoc struct {
	Context       string          `json:"@context"`
	Type          string          `json:"@type"`
	Headline      string          `json:"headline"`
	Description   string          `json:"description"`
	URL           string          `json:"url"`
	DatePublished string          `json:"datePublished"`
	DateModified  string          `json:"dateModified,omitempty"`
	Author        personDoc       `json:"author"`
	Publisher     organizationDoc `json:"publisher"`
	InLanguage    string          `json:"inLanguage"`
}

type listItemDoc struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

type breadcrumbListDoc struct {
	Context         string        `json:"@context"`
	Type            string        `json:"@type"`
	ItemListElement []listItemDoc `json:"itemListElement"`
}

// Organization returns the publisher's Organization structured data.
func (b Builder) Organization() templ.Component {
	return jsonLD(b.organizationDoc())
}

func (b Builder) organizationDoc() organizationDoc {
	return organizationDoc{
		Context: schemaContext,
		Type:    "Organization",
		Name:    branding.AppName,
		URL:     b.Absolute("/"),
		Logo:    b.Absolute("/static/icons/icon-512.png"),
	}
}

// SoftwareApplication returns product structured data for the landing page.
func (b Builder) SoftwareApplication(description string) templ.Component {
	return jsonLD(softwareApplicationDoc{
		Context:             schemaContext,
		Type:                "SoftwareApplication",
		Name:                branding.AppName,
		Description:         description,
		URL:                 b.Absolute("/"),
		ApplicationCategory: "ProductivityApplication",
		OperatingSystem:     "macOS, Windows",
		InLanguage:          []string{"en", "es"},
		Offers: offerDoc{
			Type:          "Offer",
			Price:         "49.00",
			PriceCurrency: "USD",
		},
	})
}

// FAQPage returns FAQ structured data from localized question/answer copy.
func (b Builder) FAQPage(items []QAItem) templ.Component {
	questions := make([]questionDoc, 0, len(items))
	for _, item := range items {
		questions = append(questions, questionDoc{
			Type: "Question",
			Name: item.Question,
			AcceptedAnswer: answerDoc{
				Type: "Answer",
				Text: item.Answer,
			},
		})
	}
	return jsonLD(faqPageDoc{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: questions,
	})
}

// BlogPosting returns article structured data for a blog post page.
func (b Builder) BlogPosting(params BlogPostingParams) templ.Component {
	return jsonLD(blogPostingDoc{
		Context:       schemaContext,
		Type:          "BlogPosting",
		Headline:      params.Headline,
		Description:   params.Description,
		URL:           params.URL,
		DatePublished: params.DatePublished,
		DateModified:  params.DateModified,
		Author: personDoc{
			Type: "Person",
			Name: params.AuthorName,
		},
		Publisher:  b.organizationDoc(),
		InLanguage: params.Locale,
	})
}

// BreadcrumbList returns breadcrumb structured data. The last crumb is the
// current page and carries no item URL.
func (b Builder) BreadcrumbList(crumbs []Crumb) templ.Component {
	items := make([]listItemDoc, 0, len(crumbs))
	for i, crumb := range crumbs {
		item := listItemDoc{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Name,
		}
		if i < len(crumbs)-1 {
			item.Item = crumb.URL
		}
		items = append(items, item)
	}
	return jsonLD(breadcrumbListDoc{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	})
}

func jsonLD(doc any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		payload, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal structured data: %w", err)
		}
		if _, err := io.WriteString(w, `<script type="application/ld+json">`); err != nil {
			return err
		}
		if _, err := w.Write(payload); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</script>`)
		return err
	})
}
