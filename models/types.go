package models

import "time"

// Election status constants
const (
	ElectionInactive = "inactive"
	ElectionActive   = "active"
)

// Candidacy status constants
const (
	CandidacyPending  = "pending"
	CandidacyApproved = "approved"
	CandidacyRejected = "rejected"
)

// Moderation decision constants
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// Login roles
const (
	RoleVoter     = "voter"
	RoleCandidate = "candidate"
	RoleAdmin     = "admin"
)

// Positions is the fixed set of contested positions. Candidate
// registrations for anything else are rejected.
var Positions = []string{
	"Student Body President",
	"Vice President",
	"Secretary",
	"Treasurer",
	"Department Representative",
	"Sports Secretary",
	"Cultural Secretary",
}

// ValidPosition reports whether p is one of the contested positions.
func ValidPosition(p string) bool {
	for _, known := range Positions {
		if known == p {
			return true
		}
	}
	return false
}

// Request types

type RegisterVoterRequest struct {
	FullName   string `json:"fullName"`
	StudentID  string `json:"studentId"`
	Email      string `json:"email"`
	College    string `json:"college"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
}

type RegisterCandidateRequest struct {
	FullName   string `json:"fullName"`
	StudentID  string `json:"studentId"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Manifesto  string `json:"manifesto"`
	Password   string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ModerateCandidateRequest struct {
	Decision string `json:"decision"`
}

type SetWindowRequest struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

type SetResultsVisibleRequest struct {
	Visible bool `json:"visible"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidateId"`
}

// Response types

type RegisterVoterResponse struct {
	VoterID string `json:"voterId"`
}

type RegisterCandidateResponse struct {
	CandidateID string `json:"candidateId"`
}

type LoginResponse struct {
	Role      string     `json:"role"`
	Token     string     `json:"token"`
	Voter     *Voter     `json:"voter,omitempty"`
	Candidate *Candidate `json:"candidate,omitempty"`
}

type CastVoteResponse struct {
	VoterID string `json:"voterId"`
	Message string `json:"message"`
}

type StatsResponse struct {
	TotalVoters     int    `json:"totalVoters"`
	TotalCandidates int    `json:"totalCandidates"`
	ElectionStatus  string `json:"electionStatus"`
	TotalVotesCast  int    `json:"totalVotesCast"`
}

// Domain types. JSON field names follow the persisted-state contract
// (camelCase), which replaced the reference system's ad-hoc storage.

type Voter struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	StudentID      string `json:"studentId"`
	Email          string `json:"email"`
	College        string `json:"college"`
	Department     string `json:"department"`
	Year           string `json:"year"`
	Phone          string `json:"phone"`
	CredentialHash string `json:"-"` // Never expose in JSON
}

// Candidate carries an email so candidates can authenticate. The
// reference system never deduplicated candidate emails; that behavior
// is preserved (possibly a gap, kept as-is rather than silently fixed).
type Candidate struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Manifesto      string `json:"manifesto"`
	Email          string `json:"email"`
	CredentialHash string `json:"-"` // Never expose in JSON
	Status         string `json:"status"`
}

// Election is the singleton election record.
type Election struct {
	Status         string       `json:"status"`
	VotingWindow   VotingWindow `json:"votingWindow"`
	ResultsVisible bool         `json:"resultsVisible"`
}

// VotingWindow bounds are ISO8601 on the wire; null means unset.
type VotingWindow struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Ballot view for the voting portal: approved candidates by position.

type BallotPosition struct {
	Position   string      `json:"position"`
	Candidates []Candidate `json:"candidates"`
}

type BallotResponse struct {
	Positions []BallotPosition `json:"positions"`
}

// Tally result types

type TallyRow struct {
	CandidateName string `json:"candidateName"`
	Votes         int    `json:"votes"`
	Percentage    int    `json:"percentage"`
}

type PositionResult struct {
	Candidates []TallyRow `json:"candidates"`
	TotalVotes int        `json:"totalVotes"`
}

// ResultsResponse maps position -> tallied outcome.
type ResultsResponse struct {
	Results map[string]PositionResult `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
