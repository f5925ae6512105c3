package constants

// Registration statuses, assigned once at creation.
const (
	RegistrationPending    = "PENDING"
	RegistrationConfirmed  = "CONFIRMED"
	RegistrationCancelled  = "CANCELLED"
	RegistrationWaitlisted = "WAITLISTED"
)

var RegistrationStatuses = []string{
	RegistrationPending,
	RegistrationConfirmed,
	RegistrationCancelled,
	RegistrationWaitlisted,
}

// Derived event phases, never persisted.
const (
	EventUpcoming           = "UPCOMING"
	EventOngoing            = "ONGOING"
	EventPast               = "PAST"
	EventRegistrationClosed = "REGISTRATION_CLOSED"
)

// Sponsor tiers
const (
	TierPlatinum  = "PLATINUM"
	TierGold      = "GOLD"
	TierSilver    = "SILVER"
	TierCommunity = "COMMUNITY"
)

// Opportunity types
const (
	OpportunityJob        = "JOB"
	OpportunityInternship = "INTERNSHIP"
	OpportunityVolunteer  = "VOLUNTEER"
)
