// Package seo projects domain entities into schema.org JSON-LD documents for
// embedding in page heads. Mappers are pure: required fields are always
// emitted, optional fields are emitted only when the source value is present.
// Absent optional fields are omitted entirely, never emitted as null, since
// search-engine consumers treat key-absence and null differently.
package seo

import "encoding/json"

const schemaContext = "https://schema.org"

// Doc is a JSON-LD document fragment.
type Doc map[string]interface{}

// setIf inserts key only when val is non-empty.
func (d Doc) setIf(key, val string) {
	if val != "" {
		d[key] = val
	}
}

// setDocIf inserts key only when the nested fragment has content.
func (d Doc) setDocIf(key string, val Doc) {
	if len(val) > 0 {
		d[key] = val
	}
}

// PostalAddress is a schema.org PostalAddress source.
type PostalAddress struct {
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
}

// Place is a schema.org Place source.
type Place struct {
	Name    string
	Address *PostalAddress
}

// Offer is a schema.org Offer source for event ticketing.
type Offer struct {
	Price        string
	Currency     string
	URL          string
	Availability string
}

// Organization is the source record for the organization-level document.
type Organization struct {
	Name        string
	URL         string
	Logo        string
	Description string
	Email       string
	Telephone   string
	SameAs      []string
	Address     *PostalAddress
}

// Event is the source record for an event document.
type Event struct {
	Name        string
	StartDate   string
	EndDate     string
	Description string
	Image       string
	URL         string
	Location    *Place
	Offers      *Offer
	Organizer   string
}

// Project is the source record for a program/project document.
type Project struct {
	Name        string
	Description string
	URL         string
	Image       string
	Founder     string
	StartDate   string
}

// OrganizationDoc maps an organization to its JSON-LD document. A nil source
// yields an empty document.
func OrganizationDoc(org *Organization) Doc {
	if org == nil {
		return Doc{}
	}
	doc := Doc{
		"@context": schemaContext,
		"@type":    "NGO",
		"name":     org.Name,
		"url":      org.URL,
	}
	doc.setIf("logo", org.Logo)
	doc.setIf("description", org.Description)
	doc.setIf("email", org.Email)
	doc.setIf("telephone", org.Telephone)
	if len(org.SameAs) > 0 {
		doc["sameAs"] = org.SameAs
	}
	doc.setDocIf("address", addressDoc(org.Address))
	return doc
}

// EventDoc maps an event to its JSON-LD document. A nil source yields an
// empty document; an event without offers yields a document with no offers
// key at all.
func EventDoc(ev *Event) Doc {
	if ev == nil {
		return Doc{}
	}
	doc := Doc{
		"@context":  schemaContext,
		"@type":     "Event",
		"name":      ev.Name,
		"startDate": ev.StartDate,
	}
	doc.setIf("endDate", ev.EndDate)
	doc.setIf("description", ev.Description)
	doc.setIf("image", ev.Image)
	doc.setIf("url", ev.URL)
	if ev.Location != nil {
		loc := Doc{"@type": "Place"}
		loc.setIf("name", ev.Location.Name)
		loc.setDocIf("address", addressDoc(ev.Location.Address))
		doc["location"] = loc
	}
	if ev.Offers != nil {
		offer := Doc{"@type": "Offer"}
		offer.setIf("price", ev.Offers.Price)
		offer.setIf("priceCurrency", ev.Offers.Currency)
		offer.setIf("url", ev.Offers.URL)
		offer.setIf("availability", ev.Offers.Availability)
		doc["offers"] = offer
	}
	if ev.Organizer != "" {
		doc["organizer"] = Doc{"@type": "Organization", "name": ev.Organizer}
	}
	return doc
}

// ProjectDoc maps a program/project to its JSON-LD document. A nil source
// yields an empty document.
func ProjectDoc(p *Project) Doc {
	if p == nil {
		return Doc{}
	}
	doc := Doc{
		"@context":    schemaContext,
		"@type":       "Project",
		"name":        p.Name,
		"description": p.Description,
	}
	doc.setIf("url", p.URL)
	doc.setIf("image", p.Image)
	doc.setIf("startDate", p.StartDate)
	if p.Founder != "" {
		doc["founder"] = Doc{"@type": "Organization", "name": p.Founder}
	}
	return doc
}

func addressDoc(a *PostalAddress) Doc {
	if a == nil {
		return nil
	}
	doc := Doc{"@type": "PostalAddress"}
	doc.setIf("streetAddress", a.Street)
	doc.setIf("addressLocality", a.Locality)
	doc.setIf("addressRegion", a.Region)
	doc.setIf("postalCode", a.PostalCode)
	doc.setIf("addressCountry", a.Country)
	return doc
}

// Script serializes a document to the JSON blob embedded inside a
// <script type="application/ld+json"> tag.
func Script(doc Doc) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
