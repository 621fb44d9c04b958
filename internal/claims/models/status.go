package models

import "strings"

// PolicyType is the line of business a policy covers.
type PolicyType string

const (
	PolicyTypeAuto     PolicyType = "AUTO"
	PolicyTypeHealth   PolicyType = "HEALTH"
	PolicyTypeProperty PolicyType = "PROPERTY"
	PolicyTypeLife     PolicyType = "LIFE"
)

func (t PolicyType) IsValid() bool {
	switch t {
	case PolicyTypeAuto, PolicyTypeHealth, PolicyTypeProperty, PolicyTypeLife:
		return true
	}
	return false
}

func (t PolicyType) String() string { return string(t) }

// PolicyStatus is the coverage state of a policy. Claims may only be filed
// against ACTIVE policies.
type PolicyStatus string

const (
	PolicyStatusPending   PolicyStatus = "PENDING"
	PolicyStatusActive    PolicyStatus = "ACTIVE"
	PolicyStatusExpired   PolicyStatus = "EXPIRED"
	PolicyStatusCancelled PolicyStatus = "CANCELLED"
)

func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusPending, PolicyStatusActive, PolicyStatusExpired, PolicyStatusCancelled:
		return true
	}
	return false
}

func (s PolicyStatus) String() string { return string(s) }

// ClaimStatus is a state of the claim lifecycle.
type ClaimStatus string

const (
	ClaimStatusSubmitted              ClaimStatus = "SUBMITTED"
	ClaimStatusUnderReview            ClaimStatus = "UNDER_REVIEW"
	ClaimStatusAdditionalInfoRequired ClaimStatus = "ADDITIONAL_INFO_REQUIRED"
	ClaimStatusApproved               ClaimStatus = "APPROVED"
	ClaimStatusRejected               ClaimStatus = "REJECTED"
	ClaimStatusSettled                ClaimStatus = "SETTLED"
)

// AllClaimStatuses lists every claim status in lifecycle order.
var AllClaimStatuses = []ClaimStatus{
	ClaimStatusSubmitted,
	ClaimStatusUnderReview,
	ClaimStatusAdditionalInfoRequired,
	ClaimStatusApproved,
	ClaimStatusRejected,
	ClaimStatusSettled,
}

func (s ClaimStatus) IsValid() bool {
	for _, known := range AllClaimStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible. Only
// terminal claims may be deleted.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusRejected || s == ClaimStatusSettled
}

// IsOpen reports whether the claim is still awaiting an adjuster decision.
// A policy with open claims cannot be deleted.
func (s ClaimStatus) IsOpen() bool {
	return s == ClaimStatusSubmitted || s == ClaimStatusUnderReview
}

func (s ClaimStatus) String() string { return string(s) }

// ParsePolicyType accepts any casing.
func ParsePolicyType(s string) PolicyType {
	return PolicyType(strings.ToUpper(strings.TrimSpace(s)))
}

// ParsePolicyStatus accepts any casing.
func ParsePolicyStatus(s string) PolicyStatus {
	return PolicyStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// ParseClaimStatus accepts any casing.
func ParseClaimStatus(s string) ClaimStatus {
	return ClaimStatus(strings.ToUpper(strings.TrimSpace(s)))
}
