package models

import (
	id "coverline/pkg/domain"
	"coverline/pkg/platform/validation"
)

// DefaultListLimit is the page size used when the caller asks for none.
const DefaultListLimit = 100

// Page bounds a listing. Results are ordered by creation time, oldest first.
// A negative Limit selects every row; it is never accepted from clients.
type Page struct {
	Limit  int
	Offset int
}

// Unpaged selects every row.
var Unpaged = Page{Limit: -1}

// Normalize clamps the page into the supported range.
func (p Page) Normalize() Page {
	if p.Limit < 0 {
		p.Offset = max(p.Offset, 0)
		return p
	}
	if p.Limit == 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > validation.MaxListLimit {
		p.Limit = validation.MaxListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Slice returns the window of n items the page selects as [from, to).
func (p Page) Slice(n int) (int, int) {
	p = p.Normalize()
	from := min(p.Offset, n)
	if p.Limit < 0 {
		return from, n
	}
	to := min(from+p.Limit, n)
	return from, to
}

// PolicyFilter narrows a policy listing. Zero values match everything.
type PolicyFilter struct {
	PolicyholderID id.PolicyholderID
	Status         PolicyStatus
	Page           Page
}

// Matches reports whether p passes the filter, ignoring paging.
func (f PolicyFilter) Matches(p *Policy) bool {
	if !f.PolicyholderID.IsNil() && p.PolicyholderID != f.PolicyholderID {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

// ClaimFilter narrows a claim listing. Zero values match everything.
type ClaimFilter struct {
	PolicyID id.PolicyID
	Status   ClaimStatus
	Page     Page
}

// Matches reports whether c passes the filter, ignoring paging.
func (f ClaimFilter) Matches(c *Claim) bool {
	if !f.PolicyID.IsNil() && c.PolicyID != f.PolicyID {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	return true
}
