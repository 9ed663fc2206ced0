package model

import (
	"fmt"
	"strings"
)

// DocumentCategory is the closed set of vault buckets.
type DocumentCategory string

const (
	// DocIdentity covers IDs, passports, licenses.
	DocIdentity DocumentCategory = "Identity"
	// DocEducation covers degrees and certificates.
	DocEducation DocumentCategory = "Education"
	// DocWork covers employment letters and contracts.
	DocWork DocumentCategory = "Work"
	// DocFinance covers bank, tax and insurance papers.
	DocFinance DocumentCategory = "Finance"
	// DocOther is the named fallback bucket.
	DocOther DocumentCategory = "Other"
)

// EssentialDocumentCategories is the fixed set used for preparedness
// scoring, in scoring iteration order.
var EssentialDocumentCategories = []DocumentCategory{
	DocIdentity,
	DocFinance,
	DocEducation,
	DocWork,
}

// ParseDocumentCategory maps a string to a vault category, falling back
// to Other.
func ParseDocumentCategory(s string) DocumentCategory {
	for _, c := range []DocumentCategory{DocIdentity, DocEducation, DocWork, DocFinance} {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return DocOther
}

// Document is a stored record in the vault. StorageRef points at the
// image or file outside the database; expiry is optional.
type Document struct {
	Title      string
	Category   DocumentCategory
	StorageRef string
	ExpiryDate string
	ID         int64
}

// Validate checks the invariants enforced at the write boundary.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("document title is required")
	}
	if strings.TrimSpace(d.StorageRef) == "" {
		return fmt.Errorf("document storage reference is required")
	}
	if d.ExpiryDate != "" {
		if _, err := ParseDay(d.ExpiryDate); err != nil {
			return fmt.Errorf("invalid document expiry date %q: %w", d.ExpiryDate, err)
		}
	}
	return nil
}
