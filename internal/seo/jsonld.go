package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// ContactPoint is the customer service entry of an Organization.
type ContactPoint struct {
	Telephone string
	Email     string
	Languages []string
}

// Organization returns an Organization schema with optional contact details.
func Organization(name, siteURL, logoURL, address string, contact ContactPoint) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if siteURL != "" {
		m["url"] = siteURL
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if address != "" {
		m["address"] = map[string]any{
			"@type":         "PostalAddress",
			"streetAddress": address,
		}
	}
	if contact.Telephone != "" || contact.Email != "" {
		cp := map[string]any{
			"@type":       "ContactPoint",
			"contactType": "customer service",
		}
		if contact.Telephone != "" {
			cp["telephone"] = contact.Telephone
		}
		if contact.Email != "" {
			cp["email"] = contact.Email
		}
		if len(contact.Languages) > 0 {
			cp["availableLanguage"] = contact.Languages
		}
		m["contactPoint"] = cp
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, siteURL, inLanguage string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if siteURL != "" {
		m["url"] = siteURL
	}
	if inLanguage != "" {
		m["inLanguage"] = inLanguage
	}
	return m
}
