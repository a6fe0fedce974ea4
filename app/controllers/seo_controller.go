package controllers

import (
	"net/http"

	"harborlight/app/config"
	"harborlight/app/seo"
)

// SEOController serves the schema.org JSON-LD documents the site embeds in
// its page heads. The source data is the static site content from the
// configuration; no validation happens on this path.
type SEOController struct {
	org      *seo.Organization
	events   []*seo.Event
	projects []*seo.Project
}

// NewSEOController builds a SEOController from the configured site content.
func NewSEOController(cfg *config.Config) *SEOController {
	sc := &SEOController{}

	o := cfg.Site.Organization
	if o.Name != "" {
		org := &seo.Organization{
			Name:        o.Name,
			URL:         o.URL,
			Logo:        o.Logo,
			Description: o.Description,
			Email:       o.Email,
			Telephone:   o.Telephone,
			SameAs:      o.SameAs,
		}
		if o.Street != "" || o.Locality != "" || o.Country != "" {
			org.Address = &seo.PostalAddress{
				Street:     o.Street,
				Locality:   o.Locality,
				Region:     o.Region,
				PostalCode: o.PostalCode,
				Country:    o.Country,
			}
		}
		sc.org = org
	}

	for _, e := range cfg.Site.Events {
		ev := &seo.Event{
			Name:        e.Name,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
			Image:       e.Image,
			URL:         e.URL,
			Organizer:   o.Name,
		}
		if e.LocationName != "" {
			ev.Location = &seo.Place{Name: e.LocationName}
		}
		if e.Price != "" || e.TicketURL != "" {
			ev.Offers = &seo.Offer{
				Price:    e.Price,
				Currency: e.Currency,
				URL:      e.TicketURL,
			}
		}
		sc.events = append(sc.events, ev)
	}

	for _, p := range cfg.Site.Projects {
		sc.projects = append(sc.projects, &seo.Project{
			Name:        p.Name,
			Description: p.Description,
			URL:         p.URL,
			Image:       p.Image,
			StartDate:   p.StartDate,
			Founder:     o.Name,
		})
	}

	return sc
}

// Organization serves the organization JSON-LD document
func (sc *SEOController) Organization(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, seo.OrganizationDoc(sc.org))
}

// Events serves one JSON-LD document per configured event
func (sc *SEOController) Events(w http.ResponseWriter, r *http.Request) {
	docs := make([]seo.Doc, 0, len(sc.events))
	for _, ev := range sc.events {
		docs = append(docs, seo.EventDoc(ev))
	}
	sendJSON(w, http.StatusOK, docs)
}

// Projects serves one JSON-LD document per configured project
func (sc *SEOController) Projects(w http.ResponseWriter, r *http.Request) {
	docs := make([]seo.Doc, 0, len(sc.projects))
	for _, p := range sc.projects {
		docs = append(docs, seo.ProjectDoc(p))
	}
	sendJSON(w, http.StatusOK, docs)
}
