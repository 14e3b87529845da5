// Package models holds the wire contract of the CareerPilot REST API:
// request payloads, response bodies and the closed string enumerations
// they carry. Field names follow the JSON the server sends.
package models

// Enum is implemented by every closed string enumeration of the contract.
type Enum interface {
	Valid() bool
}

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPro     Plan = "pro"
	PlanPremium Plan = "premium"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanPremium:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionCanceled, SubscriptionPastDue:
		return true
	}
	return false
}

type BillingCycle string

const (
	BillingMonthly BillingCycle = "month"
	BillingYearly  BillingCycle = "year"
)

func (c BillingCycle) Valid() bool {
	return c == BillingMonthly || c == BillingYearly
}

type BillingEventType string

const (
	BillingEventCharge BillingEventType = "charge"
	BillingEventRefund BillingEventType = "refund"
	BillingEventCredit BillingEventType = "credit"
)

func (t BillingEventType) Valid() bool {
	switch t {
	case BillingEventCharge, BillingEventRefund, BillingEventCredit:
		return true
	}
	return false
}

type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	ToneConcise        Tone = "concise"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneConversational, ToneConcise:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

func (v VerificationStatus) Valid() bool {
	return v == VerificationPending || v == VerificationVerified
}

type ResumeStatus string

const (
	ResumeActive   ResumeStatus = "active"
	ResumeArchived ResumeStatus = "archived"
)

func (s ResumeStatus) Valid() bool {
	return s == ResumeActive || s == ResumeArchived
}

// ApplicationStatus is the pipeline stage of a job application.
type ApplicationStatus string

const (
	StatusSaved       ApplicationStatus = "saved"
	StatusApplied     ApplicationStatus = "applied"
	StatusPhoneScreen ApplicationStatus = "phone_screen"
	StatusInterview   ApplicationStatus = "interview"
	StatusFinalRound  ApplicationStatus = "final_round"
	StatusOffer       ApplicationStatus = "offer"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusWithdrawn   ApplicationStatus = "withdrawn"
)

// ApplicationStatuses lists the stages in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	StatusSaved, StatusApplied, StatusPhoneScreen, StatusInterview, StatusFinalRound,
	StatusOffer, StatusAccepted, StatusRejected, StatusWithdrawn,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
	JobTemporary  JobType = "temporary"
	JobRemote     JobType = "remote"
)

func (j JobType) Valid() bool {
	switch j {
	case JobFullTime, JobPartTime, JobContract, JobInternship, JobTemporary, JobRemote:
		return true
	}
	return false
}

type FollowUpType string

const (
	FollowUpEmail         FollowUpType = "email"
	FollowUpPhone         FollowUpType = "phone"
	FollowUpLinkedIn      FollowUpType = "linkedin"
	FollowUpNote          FollowUpType = "note"
	FollowUpInterviewPrep FollowUpType = "interview_prep"
	FollowUpOther         FollowUpType = "other"
)

func (f FollowUpType) Valid() bool {
	switch f {
	case FollowUpEmail, FollowUpPhone, FollowUpLinkedIn, FollowUpNote, FollowUpInterviewPrep, FollowUpOther:
		return true
	}
	return false
}

type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "pending"
	FollowUpCompleted FollowUpStatus = "completed"
)

func (s FollowUpStatus) Valid() bool {
	return s == FollowUpPending || s == FollowUpCompleted
}
